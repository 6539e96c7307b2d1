package export

import (
	"fmt"
	"time"

	"bitbucket.org/seferidata/pos_backend/utils"
)

// Options are the caller-supplied parameters of one export run. Everything the
// pipeline needs is threaded through here; there is no ambient organization or
// date state.
type Options struct {
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	BucketMinutes  int    `json:"bucket_minutes" validate:"required,gt=0,lte=1440"`
	OrganizationId string `json:"organization_id" validate:"required"`
}

// Validate rejects bad input before any data access. Validation failures wrap
// utils.ErrorInvalidInput so callers can tell them apart from read errors.
func (o Options) Validate() error {
	if err := utils.GetValidator().Struct(o); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrorInvalidInput, utils.ProcessValidationErrors(err))
	}
	return nil
}

// Day parses Options.Date. Validate must have passed.
func (o Options) Day() (time.Time, error) {
	return utils.ParseBusinessDate(o.Date)
}
