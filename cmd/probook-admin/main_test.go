package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLocalHost(t *testing.T) {
	for _, host := range []string{"localhost", "127.0.0.1", "::1", "", " LOCALHOST "} {
		assert.True(t, isLocalHost(host), host)
	}
	for _, host := range []string{"db.internal", "10.0.0.12", "probook.example.com"} {
		assert.False(t, isLocalHost(host), host)
	}
}

func TestParseDBResetFlags(t *testing.T) {
	opts, err := parseDBResetFlags([]string{"-yes", "-seed", "-timeout", "30s"})
	require.NoError(t, err)
	assert.True(t, opts.Yes)
	assert.True(t, opts.Seed)
	assert.False(t, opts.AllowRemote)
	assert.Equal(t, "30s", opts.Timeout.String())
}

func TestConfirmActionSkippedWithYes(t *testing.T) {
	require.NoError(t, confirmAction(true, "database \"probook\" on localhost:5432"))
}
