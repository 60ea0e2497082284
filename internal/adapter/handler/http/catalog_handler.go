package http

import (
	"github.com/sm8ta/webike_rental_admin_nikita/internal/core/validation"
)

// Form validators for the catalog resources served by the generic
// handler. Each one binds the raw submission to its typed form before the
// entity is unmarshalled.

func BrandValidator() func([]byte) validation.Errors {
	return jsonForm(validation.ValidateBrand)
}

func ModelValidator() func([]byte) validation.Errors {
	return jsonForm(validation.ValidateModel)
}

func CategoryValidator() func([]byte) validation.Errors {
	return jsonForm(validation.ValidateCategory)
}

func VehicleTypeValidator() func([]byte) validation.Errors {
	return jsonForm(validation.ValidateVehicleType)
}

func CityValidator() func([]byte) validation.Errors {
	return jsonForm(validation.ValidateCity)
}

func StoreValidator() func([]byte) validation.Errors {
	return jsonForm(validation.ValidateStore)
}
