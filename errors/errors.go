package errors

import "fmt"

var (
	ErrWorkerPanic           = fmt.Errorf("worker panic")
	ErrUnauthenticated       = fmt.Errorf("unauthenticated connection")
	ErrTokenGeneration       = fmt.Errorf("token generation failed")
	ErrUserNotFound          = fmt.Errorf("user not found")
	ErrUserAlreadyExists     = fmt.Errorf("user already exists")
	ErrIncidentNotFound      = fmt.Errorf("incident not found")
	ErrIncidentRetired       = fmt.Errorf("incident is retired")
	ErrInvalidRecipientGroup = fmt.Errorf("invalid recipient group")
	ErrInvalidPayload        = fmt.Errorf("invalid payload")
)
