package impl

import (
	"context"
	"fmt"
	"log/slog"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/geo"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Fallback query bounds used when the geo section is absent from config.
const (
	defaultRadiusKm = 50.0
	maxRadiusKm     = 1000.0
	minRadiusKm     = 1.0
	defaultLimit    = 20
	maxLimit        = 50
)

// discoveryService implements the DiscoveryUsecase interface. It plans every
// proximity query the same way: validate, narrow candidates through the
// store's bounding-box pre-filter, keep only rows within the exact haversine
// radius, annotate display distances and paginate.
type discoveryService struct {
	donationRepo repository.DonationRepository
	productRepo  repository.ProductRepository
	userRepo     repository.UserRepository
	geoCfg       config.GeoConfig
	logger       *slog.Logger
}

// DiscoveryServiceParams holds dependencies for DiscoveryService, injected by Fx.
type DiscoveryServiceParams struct {
	fx.In

	DonationRepo repository.DonationRepository
	ProductRepo  repository.ProductRepository
	UserRepo     repository.UserRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewDiscoveryService is the constructor for discoveryService.
func NewDiscoveryService(params DiscoveryServiceParams) usecase.DiscoveryUsecase {
	geoCfg := config.GeoConfig{
		DefaultRadiusKm: defaultRadiusKm,
		MaxRadiusKm:     maxRadiusKm,
		DefaultLimit:    defaultLimit,
		MaxLimit:        maxLimit,
	}
	if params.Config != nil && params.Config.Geo != nil {
		if params.Config.Geo.DefaultRadiusKm > 0 {
			geoCfg.DefaultRadiusKm = params.Config.Geo.DefaultRadiusKm
		}
		if params.Config.Geo.MaxRadiusKm > 0 {
			geoCfg.MaxRadiusKm = params.Config.Geo.MaxRadiusKm
		}
		if params.Config.Geo.DefaultLimit > 0 {
			geoCfg.DefaultLimit = params.Config.Geo.DefaultLimit
		}
		if params.Config.Geo.MaxLimit > 0 {
			geoCfg.MaxLimit = params.Config.Geo.MaxLimit
		}
	}

	return &discoveryService{
		donationRepo: params.DonationRepo,
		productRepo:  params.ProductRepo,
		userRepo:     params.UserRepo,
		geoCfg:       geoCfg,
		logger:       params.Logger,
	}
}

func (srv *discoveryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// searchPlan is a validated, defaulted proximity query. A nil center means a
// plain filtered listing with no distance annotation.
type searchPlan struct {
	center   *geo.Coordinate
	radiusKm float64
	page     int
	limit    int
}

// plan validates the raw query and applies defaults. Absence is a nil field;
// any supplied value, zero included, is range-checked and out-of-range values
// are rejected, never clamped.
func (srv *discoveryService) plan(query *usecase.NearbyQuery) (*searchPlan, error) {
	p := &searchPlan{page: 1, limit: srv.geoCfg.DefaultLimit, radiusKm: srv.geoCfg.DefaultRadiusKm}

	if query.Page != nil {
		if *query.Page < 1 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("page must be at least 1")
		}
		p.page = *query.Page
	}

	if query.Limit != nil {
		if *query.Limit < 1 || *query.Limit > srv.geoCfg.MaxLimit {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("limit must be between 1 and %d", srv.geoCfg.MaxLimit))
		}
		p.limit = *query.Limit
	}

	// The radius is range-checked whenever supplied, center or not.
	if query.RadiusKm != nil {
		if *query.RadiusKm < minRadiusKm || *query.RadiusKm > srv.geoCfg.MaxRadiusKm {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("radius must be between %v and %v kilometers", minRadiusKm, srv.geoCfg.MaxRadiusKm))
		}
		p.radiusKm = *query.RadiusKm
	}

	if (query.Latitude == nil) != (query.Longitude == nil) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("latitude and longitude must be supplied together")
	}

	if query.Latitude != nil {
		center := geo.Coordinate{Lat: *query.Latitude, Lng: *query.Longitude}
		if err := center.Validate(); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}
		p.center = &center
	}

	return p, nil
}

func (p *searchPlan) pagination(total int64) usecase.Pagination {
	return usecase.Pagination{Page: p.page, Limit: p.limit, Total: total}
}

// pageBounds returns the slice bounds of the requested page over n in-memory
// candidates, used on the geo path where the exact-radius filter runs after
// the store query.
func (p *searchPlan) pageBounds(n int) (int, int) {
	start := (p.page - 1) * p.limit
	if start > n {
		start = n
	}
	end := start + p.limit
	if end > n {
		end = n
	}

	return start, end
}

// distanceTo returns the rounded display distance from the plan center, or
// nil when the query had no center.
func (p *searchPlan) distanceTo(c geo.Coordinate) *float64 {
	if p.center == nil {
		return nil
	}
	d := geo.RoundKm(geo.Distance(*p.center, c))

	return &d
}

// within reports whether the coordinate passes the exact radius test against
// the unrounded distance.
func (p *searchPlan) within(c geo.Coordinate) bool {
	return geo.Distance(*p.center, c) <= p.radiusKm
}

// NearbyDonations finds donations, defaulting the status filter to available.
func (srv *discoveryService) NearbyDonations(ctx context.Context, query *usecase.NearbyQuery) (*usecase.DonationSearchResult, error) {
	p, err := srv.plan(query)
	if err != nil {
		return nil, err
	}

	filter := repository.DonationFilter{Page: p.page, Limit: p.limit}

	status := entity.DonationAvailable
	if query.Status != "" {
		status = entity.DonationStatus(query.Status)
		if !status.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown status: " + query.Status)
		}
	}
	filter.Status = &status

	if query.Category != "" {
		category := entity.Category(query.Category)
		if !category.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category: " + query.Category)
		}
		filter.Category = &category
	}

	var donations []*entity.Donation
	var total int64
	if p.center == nil {
		donations, total, err = srv.donationRepo.List(ctx, filter)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list donations")
		}
	} else {
		candidates, err := srv.donationRepo.ListWithinBound(ctx, filter, geo.BoundAround(*p.center, p.radiusKm))
		if err != nil {
			return nil, errors.Wrap(err, "failed to list donations within bound")
		}

		matched := make([]*entity.Donation, 0, len(candidates))
		for _, donation := range candidates {
			if p.within(donation.Location()) {
				matched = append(matched, donation)
			}
		}

		total = int64(len(matched))
		start, end := p.pageBounds(len(matched))
		donations = matched[start:end]
	}

	vendors, err := srv.loadVendors(ctx, donations)
	if err != nil {
		return nil, err
	}

	matches := make([]*usecase.DonationMatch, 0, len(donations))
	for _, donation := range donations {
		matches = append(matches, &usecase.DonationMatch{
			Donation:   donation,
			Vendor:     vendors[donation.VendorID],
			DistanceKm: p.distanceTo(donation.Location()),
		})
	}

	return &usecase.DonationSearchResult{Matches: matches, Pagination: p.pagination(total)}, nil
}

// NearbyProducts finds available products.
func (srv *discoveryService) NearbyProducts(ctx context.Context, query *usecase.NearbyQuery) (*usecase.ProductSearchResult, error) {
	p, err := srv.plan(query)
	if err != nil {
		return nil, err
	}

	filter := repository.ProductFilter{OnlyAvailable: true, Page: p.page, Limit: p.limit}
	if query.Category != "" {
		category := entity.Category(query.Category)
		if !category.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category: " + query.Category)
		}
		filter.Category = &category
	}

	var products []*entity.Product
	var total int64
	if p.center == nil {
		products, total, err = srv.productRepo.List(ctx, filter)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list products")
		}
	} else {
		candidates, err := srv.productRepo.ListWithinBound(ctx, filter, geo.BoundAround(*p.center, p.radiusKm))
		if err != nil {
			return nil, errors.Wrap(err, "failed to list products within bound")
		}

		matched := make([]*entity.Product, 0, len(candidates))
		for _, product := range candidates {
			if p.within(product.Location()) {
				matched = append(matched, product)
			}
		}

		total = int64(len(matched))
		start, end := p.pageBounds(len(matched))
		products = matched[start:end]
	}

	matches := make([]*usecase.ProductMatch, 0, len(products))
	for _, product := range products {
		matches = append(matches, &usecase.ProductMatch{
			Product:    product,
			DistanceKm: p.distanceTo(product.Location()),
		})
	}

	return &usecase.ProductSearchResult{Matches: matches, Pagination: p.pagination(total)}, nil
}

// NearbyVendors finds active vendor accounts, ordered by donation score.
func (srv *discoveryService) NearbyVendors(ctx context.Context, query *usecase.NearbyQuery) (*usecase.UserSearchResult, error) {
	return srv.nearbyUsers(ctx, query,
		func(ctx context.Context, page repository.PageFilter) ([]*entity.User, int64, error) {
			return srv.userRepo.ListVendors(ctx, page)
		},
		func(ctx context.Context, bound geo.Bound) ([]*entity.User, error) {
			return srv.userRepo.ListVendorsWithinBound(ctx, bound)
		},
		vendorLocation,
	)
}

// NearbyNGOs finds active NGO accounts.
func (srv *discoveryService) NearbyNGOs(ctx context.Context, query *usecase.NearbyQuery) (*usecase.UserSearchResult, error) {
	return srv.nearbyUsers(ctx, query,
		func(ctx context.Context, page repository.PageFilter) ([]*entity.User, int64, error) {
			return srv.userRepo.ListNGOs(ctx, page)
		},
		func(ctx context.Context, bound geo.Bound) ([]*entity.User, error) {
			return srv.userRepo.ListNGOsWithinBound(ctx, bound)
		},
		ngoLocation,
	)
}

func vendorLocation(user *entity.User) geo.Coordinate {
	return user.VendorProfile.Location()
}

func ngoLocation(user *entity.User) geo.Coordinate {
	return user.NGOProfile.Location()
}

// nearbyUsers is the shared geo plan for vendor and NGO account discovery.
func (srv *discoveryService) nearbyUsers(
	ctx context.Context,
	query *usecase.NearbyQuery,
	list func(context.Context, repository.PageFilter) ([]*entity.User, int64, error),
	listWithinBound func(context.Context, geo.Bound) ([]*entity.User, error),
	location func(*entity.User) geo.Coordinate,
) (*usecase.UserSearchResult, error) {
	p, err := srv.plan(query)
	if err != nil {
		return nil, err
	}

	var users []*entity.User
	var total int64
	if p.center == nil {
		users, total, err = list(ctx, repository.PageFilter{Page: p.page, Limit: p.limit})
		if err != nil {
			return nil, errors.Wrap(err, "failed to list users")
		}
	} else {
		candidates, err := listWithinBound(ctx, geo.BoundAround(*p.center, p.radiusKm))
		if err != nil {
			return nil, errors.Wrap(err, "failed to list users within bound")
		}

		matched := make([]*entity.User, 0, len(candidates))
		for _, user := range candidates {
			if p.within(location(user)) {
				matched = append(matched, user)
			}
		}

		total = int64(len(matched))
		start, end := p.pageBounds(len(matched))
		users = matched[start:end]
	}

	matches := make([]*usecase.UserMatch, 0, len(users))
	for _, user := range users {
		matches = append(matches, &usecase.UserMatch{
			User:       user,
			DistanceKm: p.distanceTo(location(user)),
		})
	}

	return &usecase.UserSearchResult{Matches: matches, Pagination: p.pagination(total)}, nil
}

// loadVendors batch-loads the owning vendors of a donation page so each match
// can embed the vendor summary without per-row lookups.
func (srv *discoveryService) loadVendors(ctx context.Context, donations []*entity.Donation) (map[uuid.UUID]*entity.User, error) {
	if len(donations) == 0 {
		return nil, nil
	}

	seen := make(map[uuid.UUID]struct{}, len(donations))
	ids := make([]uuid.UUID, 0, len(donations))
	for _, donation := range donations {
		if _, ok := seen[donation.VendorID]; ok {
			continue
		}
		seen[donation.VendorID] = struct{}{}
		ids = append(ids, donation.VendorID)
	}

	vendors, err := srv.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		srv.log(ctx).Warn("Failed to load vendors for donation results", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load donation vendors")
	}

	byID := make(map[uuid.UUID]*entity.User, len(vendors))
	for _, vendor := range vendors {
		byID[vendor.ID] = vendor
	}

	return byID, nil
}
