package loyalty

import (
	"context"

	"github.com/unistep/loyalty-backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/unistep/loyalty-backend/services/loyalty ApexGW,SMSGW

// ApexGW is the outbound gateway to the Apex ERP. Failures are tagged with
// the apexerr taxonomy; business statuses come back verbatim in the result.
// The gateway never retries: a timeout says nothing about whether Apex
// applied the write, so retry policy is left to the caller.
type ApexGW interface {
	SyncRegister(ctx context.Context, payload *models.ApexRegisterPayload) (*models.ApexResult, error)
	SyncUpdate(ctx context.Context, payload *models.ApexUpdatePayload) (*models.ApexResult, error)
}

// SMSGW sends a text message to a phone number. Treated as a black box
// returning success or failure.
type SMSGW interface {
	SendSMS(ctx context.Context, phoneNumber, message string) error
}
