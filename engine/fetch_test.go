package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftahirops/gridmix/model"
)

func TestMixStateInitial(t *testing.T) {
	s := NewMixState()
	assert.True(t, s.Loading)
	assert.Nil(t, s.Data)
	assert.Empty(t, s.Err)
}

func TestMixStateSuccess(t *testing.T) {
	s := NewMixState()
	seq := s.Begin()
	mix := model.EnergyMix{Days: []model.DailyEnergyData{{Date: "2026-01-06"}}}
	require.True(t, s.Resolve(seq, mix))

	assert.False(t, s.Loading)
	assert.Empty(t, s.Err)
	require.NotNil(t, s.Data)
	assert.Equal(t, mix, *s.Data)
}

func TestMixStateFailure(t *testing.T) {
	s := NewMixState()
	seq := s.Begin()
	require.True(t, s.Fail(seq, errors.New("api returned status 500")))

	assert.False(t, s.Loading)
	assert.Equal(t, "api returned status 500", s.Err)
	assert.Nil(t, s.Data)
	assert.True(t, s.Failed())
}

func TestFailFallbackMessage(t *testing.T) {
	s := NewMixState()
	s.Fail(s.Begin(), nil)
	assert.Equal(t, MixFetchFallback, s.Err)

	w := NewWindowState()
	w.Fail(w.Begin(), errors.New(""))
	assert.Equal(t, WindowFetchFallback, w.Err)
}

func TestWindowStateKeepsResultAfterFailure(t *testing.T) {
	s := NewWindowState()
	assert.False(t, s.Loading)

	win := model.OptimalWindow{CleanEnergyPercent: 78.5}
	require.True(t, s.Resolve(s.Begin(), win))

	seq := s.Begin()
	assert.True(t, s.Loading)
	assert.Empty(t, s.Err, "entering loading clears the error")
	require.NotNil(t, s.Data, "entering loading keeps the payload")

	require.True(t, s.Fail(seq, errors.New("boom")))
	assert.False(t, s.Loading)
	assert.Equal(t, "boom", s.Err)
	require.NotNil(t, s.Data)
	assert.Equal(t, 78.5, s.Data.CleanEnergyPercent)
}

func TestStaleResponseDropped(t *testing.T) {
	s := NewWindowState()
	first := s.Begin()
	second := s.Begin()

	assert.False(t, s.Resolve(first, model.OptimalWindow{CleanEnergyPercent: 10}))
	assert.True(t, s.Loading, "stale response must not end loading")
	assert.Nil(t, s.Data)

	assert.True(t, s.Resolve(second, model.OptimalWindow{CleanEnergyPercent: 20}))
	assert.False(t, s.Fail(first, errors.New("late failure")))
	assert.Empty(t, s.Err)
	assert.Equal(t, 20.0, s.Data.CleanEnergyPercent)
	assert.Equal(t, second, s.Latest())
}
