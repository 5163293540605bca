package main

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func Test_Run(t *testing.T) {
	const want = " 0 1 2 6 7 88 100 700000\r\n"

	var first, second bytes.Buffer
	require.NoError(t, run(&first))
	require.NoError(t, run(&second))

	if diff := cmp.Diff(want, first.String()); diff != "" {
		t.Errorf("output (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(first.Bytes(), second.Bytes()); diff != "" {
		t.Errorf("second run differs (-first +second):\n%s", diff)
	}
}
