package contribution

import (
	"context"

	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/contribution"
	"github.com/suweldo-hr/suweldo-backend-go/internal/pkg/validator"
)

// AdminServiceImpl publishes and lists statutory table versions.
type AdminServiceImpl struct {
	repo     contribution.TableRepository
	resolver *CachingResolver
}

func NewAdminService(repo contribution.TableRepository, resolver *CachingResolver) contribution.AdminService {
	return &AdminServiceImpl{repo: repo, resolver: resolver}
}

func (s *AdminServiceImpl) PublishBracketTable(ctx context.Context, req contribution.CreateBracketTableRequest) (contribution.BracketTableResponse, error) {
	if err := req.Validate(); err != nil {
		return contribution.BracketTableResponse{}, err
	}

	effectiveFrom, _ := validator.IsValidDate(req.EffectiveFrom)
	table := contribution.BracketTable{
		Kind:          contribution.Kind(req.Kind),
		EffectiveFrom: effectiveFrom,
	}
	for _, b := range req.Brackets {
		table.Brackets = append(table.Brackets, contribution.Bracket{
			Floor:    b.Floor,
			Ceiling:  b.Ceiling,
			Employee: contribution.Share{Amount: b.EmployeeAmount, Rate: b.EmployeeRate},
			Employer: contribution.Share{Amount: b.EmployerAmount, Rate: b.EmployerRate},
		})
	}
	if err := table.Validate(); err != nil {
		return contribution.BracketTableResponse{}, err
	}

	created, err := s.repo.CreateBracketTable(ctx, table)
	if err != nil {
		return contribution.BracketTableResponse{}, err
	}
	s.resolver.Invalidate()
	return contribution.ToBracketTableResponse(created), nil
}

func (s *AdminServiceImpl) PublishTaxTable(ctx context.Context, req contribution.CreateTaxTableRequest) (contribution.TaxTableResponse, error) {
	if err := req.Validate(); err != nil {
		return contribution.TaxTableResponse{}, err
	}

	effectiveFrom, _ := validator.IsValidDate(req.EffectiveFrom)
	table := contribution.TaxTable{
		Frequency:     contribution.PayFrequency(req.Frequency),
		EffectiveFrom: effectiveFrom,
	}
	for _, b := range req.Brackets {
		table.Brackets = append(table.Brackets, contribution.TaxBracket{
			Floor:   b.Floor,
			Ceiling: b.Ceiling,
			BaseTax: b.BaseTax,
			Rate:    b.Rate,
		})
	}
	if err := table.Validate(); err != nil {
		return contribution.TaxTableResponse{}, err
	}

	created, err := s.repo.CreateTaxTable(ctx, table)
	if err != nil {
		return contribution.TaxTableResponse{}, err
	}
	s.resolver.Invalidate()
	return contribution.ToTaxTableResponse(created), nil
}

func (s *AdminServiceImpl) ListBracketTables(ctx context.Context, kind contribution.Kind) ([]contribution.BracketTableResponse, error) {
	if !kind.Valid() {
		return nil, contribution.ErrInvalidKind
	}
	tables, err := s.repo.ListBracketTables(ctx, kind)
	if err != nil {
		return nil, err
	}
	result := make([]contribution.BracketTableResponse, 0, len(tables))
	for _, t := range tables {
		result = append(result, contribution.ToBracketTableResponse(t))
	}
	return result, nil
}

func (s *AdminServiceImpl) ListTaxTables(ctx context.Context, frequency contribution.PayFrequency) ([]contribution.TaxTableResponse, error) {
	if !frequency.Valid() {
		return nil, contribution.ErrInvalidFrequency
	}
	tables, err := s.repo.ListTaxTables(ctx, frequency)
	if err != nil {
		return nil, err
	}
	result := make([]contribution.TaxTableResponse, 0, len(tables))
	for _, t := range tables {
		result = append(result, contribution.ToTaxTableResponse(t))
	}
	return result, nil
}
