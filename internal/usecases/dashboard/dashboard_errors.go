package dashboard

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de dashboards
var (
	ErrDashboardNotFound   = errors.New("dashboard not found")
	ErrDashboardIDRequired = errors.New("dashboard ID is required")
	ErrGenerateID          = errors.New("error generating dashboard ID")
)

// DashboardError é um erro com contexto adicional para dashboards
type DashboardError struct {
	Err         error  // Erro base
	Code        string // Código de erro para API
	DashboardID string // ID do dashboard envolvido (quando aplicável)
	Details     string
}

func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewDashboardErrorWithID(err error, code string, dashboardID string, details string) *DashboardError {
	return &DashboardError{
		Err:         err,
		Code:        code,
		DashboardID: dashboardID,
		Details:     details,
	}
}
