// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"context"
	"sync"

	"folder-picker/internal/dialog"
)

// FakePicker is a dialog.Picker returning a scripted result and recording
// every request it receives.
type FakePicker struct {
	// Paths is returned as the selection. nil simulates a cancelled dialog.
	Paths []string
	// Err is returned instead of a selection when set.
	Err error

	mu       sync.Mutex
	requests []dialog.Request
}

// PickDirectories implements dialog.Picker.
func (f *FakePicker) PickDirectories(_ context.Context, req dialog.Request) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Paths, nil
}

// Requests returns a copy of the recorded requests.
func (f *FakePicker) Requests() []dialog.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]dialog.Request(nil), f.requests...)
}

// LastRequest returns the most recent request and whether one was recorded.
func (f *FakePicker) LastRequest() (dialog.Request, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.requests) == 0 {
		return dialog.Request{}, false
	}
	return f.requests[len(f.requests)-1], true
}
