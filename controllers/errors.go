package controllers

import "errors"

var (
	ErrRestaurantNotFound            = errors.New("restaurant not found")
	ErrSectionNotFound               = errors.New("section not found")
	ErrTableNotFound                 = errors.New("table not found")
	ErrPartyNotFound                 = errors.New("party not found")
	ErrReservationNotFound           = errors.New("reservation not found")
	ErrServerNotFound                = errors.New("server not found")
	ErrWaitingListEntryNotFound      = errors.New("waiting list entry not found")
	ErrTableAssignmentNotFound       = errors.New("table assignment not found")
	ErrReservationAssignmentNotFound = errors.New("reservation assignment not found")

	errInvalidPartySize = errors.New("party_size must be a positive integer")
)
