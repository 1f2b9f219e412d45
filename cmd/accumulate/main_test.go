package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	cases := []struct {
		name string
		args []string
		code int
	}{
		{"sum", []string{"accumulate", "--sum", "1", "2", "3"}, 0},
		{"mult", []string{"accumulate", "-m", "2", "3"}, 0},
		{"help", []string{"accumulate", "--sum", "-h"}, 0},
		{"no numbers", []string{"accumulate", "--sum"}, 1},
		{"neither", []string{"accumulate", "4"}, 1},
		{"unknown", []string{"accumulate", "--frobnicate", "4"}, 1},
		{"not a number", []string{"accumulate", "--sum", "four"}, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.code, run(tc.args), tc.name)
	}
}
