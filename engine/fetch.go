package engine

import "github.com/ftahirops/gridmix/model"

// Fallback messages for failures that carry no description.
const (
	MixFetchFallback    = "Failed to fetch energy data"
	WindowFetchFallback = "Failed to fetch optimal window"
)

// FetchState is the loading/success/failure machine behind one endpoint.
// Each Begin issues a new sequence number; only the response to the latest
// issued request is applied, older ones are dropped.
type FetchState[T any] struct {
	Loading bool
	Err     string
	Data    *T

	fallback string
	issued   uint64
}

// MixState tracks the energy-mix fetch.
type MixState = FetchState[model.EnergyMix]

// WindowState tracks the optimal-window fetch.
type WindowState = FetchState[model.OptimalWindow]

// NewMixState starts in loading: the mix is requested as soon as the
// dashboard comes up.
func NewMixState() MixState {
	return MixState{Loading: true, fallback: MixFetchFallback}
}

// NewWindowState starts idle; the window is only fetched on request.
func NewWindowState() WindowState {
	return WindowState{fallback: WindowFetchFallback}
}

// Begin enters loading and returns the sequence number of the new request.
// The previous payload is kept.
func (s *FetchState[T]) Begin() uint64 {
	s.issued++
	s.Loading = true
	s.Err = ""
	return s.issued
}

// Latest returns the sequence number of the most recently issued request.
func (s *FetchState[T]) Latest() uint64 {
	return s.issued
}

// Resolve applies a successful response. It reports false for stale ones.
func (s *FetchState[T]) Resolve(seq uint64, data T) bool {
	if seq != s.issued {
		return false
	}
	s.Loading = false
	s.Err = ""
	s.Data = &data
	return true
}

// Fail applies a failed response. It reports false for stale ones.
func (s *FetchState[T]) Fail(seq uint64, err error) bool {
	if seq != s.issued {
		return false
	}
	s.Loading = false
	s.Err = s.fallback
	if err != nil && err.Error() != "" {
		s.Err = err.Error()
	}
	if s.Err == "" {
		s.Err = "request failed"
	}
	return true
}

// Failed reports whether the last completed request failed.
func (s FetchState[T]) Failed() bool {
	return !s.Loading && s.Err != ""
}
