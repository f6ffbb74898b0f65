package simulate

import "github.com/pkg/errors"

var (
	// ErrUnknownEventType is returned for a type name no category recognizes.
	ErrUnknownEventType = errors.New("unknown event type")
	// ErrInvalidArgument is the kind of every caller input error below.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMissingTouchTarget is returned for a touch record without a target.
	ErrMissingTouchTarget = errors.WithMessage(ErrInvalidArgument, "missing touch target")
	// ErrNoTarget is returned when there is no element to dispatch on.
	ErrNoTarget = errors.WithMessage(ErrInvalidArgument, "no target element")
)
