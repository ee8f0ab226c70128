package service

import "errors"

// Service errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTourNotFound       = errors.New("tour not found")
	ErrCampaignNotFound   = errors.New("campaign not found")
	ErrUnknownMetric      = errors.New("unknown comparison metric")
	ErrInvalidDiscount    = errors.New("discount rate must be between 0 and 50")
)
