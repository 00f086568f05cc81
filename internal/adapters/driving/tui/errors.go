package tui

import "errors"

// ErrMissingDialogueService is returned when the dialogue service is not provided.
var ErrMissingDialogueService = errors.New("tui: dialogue service is required")

// ErrMissingCase is returned when no case is selected.
var ErrMissingCase = errors.New("tui: case is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
