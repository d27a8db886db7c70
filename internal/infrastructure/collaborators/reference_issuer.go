package collaborators

import (
	"context"
	"fmt"
	"strings"

	"takaful_quote/internal/domain/entities"
	"takaful_quote/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const referencePrefix = "TKF"

type referenceCounter interface {
	Incr(ctx context.Context, key string) (int64, error)
	ReferenceKey(scope string) string
}

// ReferenceIssuer hands out references like TKF-MOT-000042. Without a
// counter (no Redis) the suffix is random instead of sequential.
type ReferenceIssuer struct {
	counter referenceCounter
}

var _ interfaces.IReferenceIssuer = (*ReferenceIssuer)(nil)

func NewReferenceIssuer(counter referenceCounter) *ReferenceIssuer {
	return &ReferenceIssuer{counter: counter}
}

func (r *ReferenceIssuer) NextReference(ctx context.Context, insuranceType entities.InsuranceType) (string, error) {
	line := lineCode(insuranceType)
	if r.counter == nil {
		suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
		return fmt.Sprintf("%s-%s-%s", referencePrefix, line, suffix), nil
	}
	n, err := r.counter.Incr(ctx, r.counter.ReferenceKey(line))
	if err != nil {
		return "", fmt.Errorf("reference counter: %w", err)
	}
	return fmt.Sprintf("%s-%s-%06d", referencePrefix, line, n), nil
}

func lineCode(t entities.InsuranceType) string {
	switch t {
	case entities.InsuranceTypeMotor:
		return "MOT"
	case entities.InsuranceTypeTravel:
		return "TRV"
	}
	code := strings.ToUpper(strings.TrimSpace(string(t)))
	if len(code) > 3 {
		code = code[:3]
	}
	if code == "" {
		return "GEN"
	}
	return code
}
