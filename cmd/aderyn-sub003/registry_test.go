package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Cyfrin/aderyn-sub003/internal/config"
)

func TestAllDetectorsReturnsEverySupportedDetector(t *testing.T) {
	dets := allDetectors(config.DetectorProfile{})
	require.Len(t, dets, 6)
}

func TestAllDetectorsHonorsExcludeProfile(t *testing.T) {
	profile := config.DetectorProfile{Exclude: []string{"tx-origin-used-for-auth", "unspecific-solidity-pragma"}}
	dets := allDetectors(profile)

	require.Len(t, dets, 4)
	for _, d := range dets {
		require.NotEqual(t, "tx-origin-used-for-auth", d.Name())
		require.NotEqual(t, "unspecific-solidity-pragma", d.Name())
	}
}
