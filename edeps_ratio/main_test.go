package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelLabel(t *testing.T) {
	assert.Equal(t, "noFSI", modelLabel("/data/mc.root", "/other/mc_noFSI.root"))
	assert.Equal(t, "tune_v2", modelLabel("mc.root", "mc_tune_v2.root"))
	assert.Equal(t, "genie", modelLabel("mc.root", "genie.root"))
	assert.Equal(t, "mc.root", modelLabel("mc.root", "mc.root"))
}
