package usecases

import (
	"context"
	"fmt"

	"upravdom/internal/domain/catalog"
	"upravdom/internal/shared/errors"
	"upravdom/internal/shared/logger"
)

type GetAddressExecutor interface {
	Execute(ctx context.Context, id uint) (*AddressDetail, error)
}

// AddressDetail pairs an address with the dispatch service responsible
// for it.
type AddressDetail struct {
	Address *catalog.Address
	ODS     *catalog.ODS
}

type GetAddressUseCase struct {
	addressRepo catalog.AddressRepository
	logger      logger.Interface
}

func NewGetAddressUseCase(addressRepo catalog.AddressRepository, logger logger.Interface) *GetAddressUseCase {
	return &GetAddressUseCase{addressRepo: addressRepo, logger: logger}
}

func (uc *GetAddressUseCase) Execute(ctx context.Context, id uint) (*AddressDetail, error) {
	if id == 0 {
		return nil, errors.NewValidationError("address ID is required")
	}

	address, err := uc.addressRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("address %d not found", id))
	}

	detail := &AddressDetail{Address: address}

	// Addresses imported without a dispatch service keep a zero ODS ID.
	if address.ODSID != 0 {
		ods, err := uc.addressRepo.GetODSByID(ctx, address.ODSID)
		if err != nil {
			uc.logger.Warnw("address references unknown dispatch service", "address_id", id, "ods_id", address.ODSID)
		} else {
			detail.ODS = ods
		}
	}

	return detail, nil
}
