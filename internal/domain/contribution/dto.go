package contribution

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/suweldo-hr/suweldo-backend-go/internal/pkg/validator"
)

type BracketRequest struct {
	Floor          decimal.Decimal  `json:"floor"`
	Ceiling        *decimal.Decimal `json:"ceiling"`
	EmployeeAmount decimal.Decimal  `json:"employee_amount"`
	EmployeeRate   decimal.Decimal  `json:"employee_rate"`
	EmployerAmount decimal.Decimal  `json:"employer_amount"`
	EmployerRate   decimal.Decimal  `json:"employer_rate"`
}

type CreateBracketTableRequest struct {
	Kind          string           `json:"kind"`
	EffectiveFrom string           `json:"effective_from"`
	Brackets      []BracketRequest `json:"brackets"`
}

func (r CreateBracketTableRequest) Validate() error {
	var errs validator.ValidationErrors
	if !Kind(r.Kind).Valid() {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be one of sss, philhealth, pagibig"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if len(r.Brackets) == 0 {
		errs = append(errs, validator.ValidationError{Field: "brackets", Message: "at least one bracket is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TaxBracketRequest struct {
	Floor   decimal.Decimal  `json:"floor"`
	Ceiling *decimal.Decimal `json:"ceiling"`
	BaseTax decimal.Decimal  `json:"base_tax"`
	Rate    decimal.Decimal  `json:"rate"`
}

type CreateTaxTableRequest struct {
	Frequency     string              `json:"frequency"`
	EffectiveFrom string              `json:"effective_from"`
	Brackets      []TaxBracketRequest `json:"brackets"`
}

func (r CreateTaxTableRequest) Validate() error {
	var errs validator.ValidationErrors
	if !PayFrequency(r.Frequency).Valid() {
		errs = append(errs, validator.ValidationError{Field: "frequency", Message: "must be one of daily, weekly, semi_monthly, monthly"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if len(r.Brackets) == 0 {
		errs = append(errs, validator.ValidationError{Field: "brackets", Message: "at least one bracket is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BracketResponse struct {
	Floor          decimal.Decimal  `json:"floor"`
	Ceiling        *decimal.Decimal `json:"ceiling"`
	EmployeeAmount decimal.Decimal  `json:"employee_amount"`
	EmployeeRate   decimal.Decimal  `json:"employee_rate"`
	EmployerAmount decimal.Decimal  `json:"employer_amount"`
	EmployerRate   decimal.Decimal  `json:"employer_rate"`
}

type BracketTableResponse struct {
	ID            string            `json:"id"`
	Kind          string            `json:"kind"`
	EffectiveFrom string            `json:"effective_from"`
	EffectiveTo   *string           `json:"effective_to,omitempty"`
	Brackets      []BracketResponse `json:"brackets"`
}

type TaxBracketResponse struct {
	Floor   decimal.Decimal  `json:"floor"`
	Ceiling *decimal.Decimal `json:"ceiling"`
	BaseTax decimal.Decimal  `json:"base_tax"`
	Rate    decimal.Decimal  `json:"rate"`
}

type TaxTableResponse struct {
	ID            string               `json:"id"`
	Frequency     string               `json:"frequency"`
	EffectiveFrom string               `json:"effective_from"`
	EffectiveTo   *string              `json:"effective_to,omitempty"`
	Brackets      []TaxBracketResponse `json:"brackets"`
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

func ToBracketTableResponse(t BracketTable) BracketTableResponse {
	brackets := make([]BracketResponse, 0, len(t.Brackets))
	for _, b := range t.Brackets {
		brackets = append(brackets, BracketResponse{
			Floor:          b.Floor,
			Ceiling:        b.Ceiling,
			EmployeeAmount: b.Employee.Amount,
			EmployeeRate:   b.Employee.Rate,
			EmployerAmount: b.Employer.Amount,
			EmployerRate:   b.Employer.Rate,
		})
	}
	return BracketTableResponse{
		ID:            t.ID,
		Kind:          string(t.Kind),
		EffectiveFrom: t.EffectiveFrom.Format("2006-01-02"),
		EffectiveTo:   formatDatePtr(t.EffectiveTo),
		Brackets:      brackets,
	}
}

func ToTaxTableResponse(t TaxTable) TaxTableResponse {
	brackets := make([]TaxBracketResponse, 0, len(t.Brackets))
	for _, b := range t.Brackets {
		brackets = append(brackets, TaxBracketResponse{
			Floor:   b.Floor,
			Ceiling: b.Ceiling,
			BaseTax: b.BaseTax,
			Rate:    b.Rate,
		})
	}
	return TaxTableResponse{
		ID:            t.ID,
		Frequency:     string(t.Frequency),
		EffectiveFrom: t.EffectiveFrom.Format("2006-01-02"),
		EffectiveTo:   formatDatePtr(t.EffectiveTo),
		Brackets:      brackets,
	}
}
