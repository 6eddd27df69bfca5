package main

import (
	"errors"

	"golang.design/x/clipboard"
)

var errEmptyClipboard = errors.New("clipboard holds no text")

// systemClipboard exchanges map dumps as text with the OS clipboard.
type systemClipboard struct{}

func newSystemClipboard() (systemClipboard, error) {
	if err := clipboard.Init(); err != nil {
		return systemClipboard{}, err
	}
	return systemClipboard{}, nil
}

func (systemClipboard) Read() ([]byte, error) {
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return nil, errEmptyClipboard
	}
	return data, nil
}

func (systemClipboard) Write(data []byte) error {
	clipboard.Write(clipboard.FmtText, data)
	return nil
}
