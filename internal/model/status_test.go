package model

import "testing"

func TestFetchState_IsActive(t *testing.T) {
	tests := []struct {
		state    FetchState
		expected bool
	}{
		{FetchStateIdle, false},
		{FetchStateFetching, true},
		{FetchStateReady, false},
		{FetchStateError, false},
	}

	for _, test := range tests {
		result := test.state.IsActive()
		if result != test.expected {
			t.Errorf("FetchState(%s).IsActive() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestFetchState_IsFinished(t *testing.T) {
	tests := []struct {
		state    FetchState
		expected bool
	}{
		{FetchStateIdle, false},
		{FetchStateFetching, false},
		{FetchStateReady, true},
		{FetchStateError, true},
	}

	for _, test := range tests {
		result := test.state.IsFinished()
		if result != test.expected {
			t.Errorf("FetchState(%s).IsFinished() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestDownloadState_IsActive(t *testing.T) {
	tests := []struct {
		state    DownloadState
		expected bool
	}{
		{DownloadStateIdle, false},
		{DownloadStateDownloading, true},
		{DownloadStateDone, false},
		{DownloadStateError, false},
	}

	for _, test := range tests {
		result := test.state.IsActive()
		if result != test.expected {
			t.Errorf("DownloadState(%s).IsActive() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestDownloadState_IsFinished(t *testing.T) {
	tests := []struct {
		state    DownloadState
		expected bool
	}{
		{DownloadStateIdle, false},
		{DownloadStateDownloading, false},
		{DownloadStateDone, true},
		{DownloadStateError, true},
	}

	for _, test := range tests {
		result := test.state.IsFinished()
		if result != test.expected {
			t.Errorf("DownloadState(%s).IsFinished() = %v, expected %v", test.state, result, test.expected)
		}
	}
}

func TestDownloadState_String(t *testing.T) {
	status := DownloadStateDownloading
	expected := "Downloading"
	result := status.String()

	if result != expected {
		t.Errorf("DownloadState.String() = %s, expected %s", result, expected)
	}
}
