package services

import (
	"fmt"
	"path"
	"strings"
)

// Entity subfolders under the backend's uploads directory.
const (
	ImagesBikes         = "bikes"
	ImagesBrands        = "brands"
	ImagesModels        = "models"
	ImagesCities        = "cities"
	ImagesStores        = "stores"
	ImagesServiceOrders = "services"
)

// ImageResolver turns the relative image paths stored by the backend into
// absolute URLs. One rule set for every entity type: strip known
// prefixes, keep the basename, prepend the canonical uploads prefix.
type ImageResolver struct {
	baseURL string
}

func NewImageResolver(baseURL string) *ImageResolver {
	return &ImageResolver{baseURL: strings.TrimRight(baseURL, "/")}
}

func (r *ImageResolver) Resolve(subfolder, rawPath string) string {
	if rawPath == "" {
		return ""
	}
	if strings.HasPrefix(rawPath, "http://") || strings.HasPrefix(rawPath, "https://") {
		return rawPath
	}

	name := path.Base(strings.Trim(rawPath, "/"))
	if name == "." || name == "/" {
		return ""
	}
	return fmt.Sprintf("%s/uploads/%s/%s", r.baseURL, subfolder, name)
}
