package usecase

import (
	"github.com/jhoicas/progarden-crm/internal/application/dto"
	"github.com/jhoicas/progarden-crm/internal/domain/entity"
	"github.com/jhoicas/progarden-crm/internal/domain/repository"
)

// MarketingUseCase marketing tracker CRUD.
type MarketingUseCase struct {
	crud[entity.MarketingPost, dto.MarketingRequest, dto.MarketingResponse]
}

// NewMarketingUseCase builds the use case.
func NewMarketingUseCase(repo repository.MarketingRepository) *MarketingUseCase {
	return &MarketingUseCase{crud[entity.MarketingPost, dto.MarketingRequest, dto.MarketingResponse]{
		repo:       repo,
		toEntity:   marketingFromRequest,
		toResponse: toMarketingResponse,
		setID:      func(e *entity.MarketingPost, id int64) { e.ID = id },
	}}
}

func marketingFromRequest(in dto.MarketingRequest) (*entity.MarketingPost, error) {
	platform, err := required("platform", in.Platform)
	if err != nil {
		return nil, err
	}
	postDate, err := dto.ParseDatePtr("post_date", in.PostDate)
	if err != nil {
		return nil, err
	}
	if err := nonNegativeInt("engagement", in.Engagement); err != nil {
		return nil, err
	}
	return &entity.MarketingPost{
		Platform:      platform,
		PostDate:      postDate,
		ContentType:   dto.Optional(in.ContentType),
		Description:   dto.Optional(in.Description),
		Engagement:    in.Engagement,
		SalesFromPost: in.SalesFromPost,
		Notes:         dto.Optional(in.Notes),
	}, nil
}

func toMarketingResponse(m *entity.MarketingPost) dto.MarketingResponse {
	return dto.MarketingResponse{
		ID: m.ID,
		MarketingRequest: dto.MarketingRequest{
			Platform:      m.Platform,
			PostDate:      dto.FormatDatePtr(m.PostDate),
			ContentType:   m.ContentType,
			Description:   m.Description,
			Engagement:    m.Engagement,
			SalesFromPost: m.SalesFromPost,
			Notes:         m.Notes,
		},
		CreatedAt: m.CreatedAt,
	}
}
