package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hanoi-search/internal/hanoi"
)

func TestStrategyLabels(t *testing.T) {
	assert.Equal(t, []string{"Breadth-First", "A*"}, strategyLabels())
	assert.Equal(t, "A*", strategyLabel(hanoi.BestFirst))
	assert.Equal(t, "Breadth-First", strategyLabel(hanoi.Strategy(99)), "unknown falls back to the first option")
}
