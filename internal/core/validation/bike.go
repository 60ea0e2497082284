package validation

type BikeForm struct {
	Name               string `json:"name" validate:"required,max=100"`
	BrandID            string `json:"brand_id" validate:"required,uuid"`
	ModelID            string `json:"model_id" validate:"required,uuid"`
	CategoryID         string `json:"category_id" validate:"required,uuid"`
	VehicleTypeID      string `json:"vehicle_type_id" validate:"required,uuid"`
	StoreID            string `json:"store_id" validate:"required,uuid"`
	RegistrationNumber string `json:"registration_number" validate:"required,max=20"`
	Year               int    `json:"year" validate:"omitempty,min=1990,max=2100"`
	Mileage            int    `json:"mileage" validate:"min=0"`
}

var BikeFieldOrder = []string{
	"name",
	"brand_id",
	"model_id",
	"category_id",
	"vehicle_type_id",
	"store_id",
	"registration_number",
	"year",
	"mileage",
}

func ValidateBike(form BikeForm) Errors {
	errs := runTags(form)
	requireTrimmed(errs, "name", form.Name)
	requireTrimmed(errs, "registration_number", form.RegistrationNumber)
	return errs
}
