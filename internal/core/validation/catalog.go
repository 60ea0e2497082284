package validation

type BrandForm struct {
	Name    string `json:"name" validate:"required,max=100"`
	Country string `json:"country" validate:"max=100"`
}

var BrandFieldOrder = []string{"name", "country"}

func ValidateBrand(form BrandForm) Errors {
	errs := runTags(form)
	requireTrimmed(errs, "name", form.Name)
	return errs
}

type ModelForm struct {
	Name    string `json:"name" validate:"required,max=100"`
	BrandID string `json:"brand_id" validate:"required,uuid"`
	Year    int    `json:"year" validate:"omitempty,min=1990,max=2100"`
}

var ModelFieldOrder = []string{"name", "brand_id", "year"}

func ValidateModel(form ModelForm) Errors {
	errs := runTags(form)
	requireTrimmed(errs, "name", form.Name)
	return errs
}

type CategoryForm struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

var CategoryFieldOrder = []string{"name", "description"}

func ValidateCategory(form CategoryForm) Errors {
	errs := runTags(form)
	requireTrimmed(errs, "name", form.Name)
	return errs
}

type CityForm struct {
	Name   string `json:"name" validate:"required,max=100"`
	Region string `json:"region" validate:"max=100"`
}

var CityFieldOrder = []string{"name", "region"}

func ValidateCity(form CityForm) Errors {
	errs := runTags(form)
	requireTrimmed(errs, "name", form.Name)
	return errs
}

type VehicleTypeForm struct {
	Name   string `json:"name" validate:"required,max=100"`
	Wheels int    `json:"wheels" validate:"omitempty,gt=0,max=4"`
}

var VehicleTypeFieldOrder = []string{"name", "wheels"}

func ValidateVehicleType(form VehicleTypeForm) Errors {
	errs := runTags(form)
	requireTrimmed(errs, "name", form.Name)
	return errs
}

type StoreForm struct {
	Name    string `json:"name" validate:"required,max=100"`
	CityID  string `json:"city_id" validate:"required,uuid"`
	Address string `json:"address" validate:"required,max=300"`
	Phone   string `json:"phone" validate:"max=20"`
}

var StoreFieldOrder = []string{"name", "city_id", "address", "phone"}

func ValidateStore(form StoreForm) Errors {
	errs := runTags(form)
	requireTrimmed(errs, "name", form.Name)
	requireTrimmed(errs, "address", form.Address)
	return errs
}
