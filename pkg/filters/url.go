package filters

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// URLEscape percent-encodes everything except unreserved characters and "&".
func URLEscape(s string) string {
	return strings.ReplaceAll(rawURLEncode(s), "%26", "&")
}

// URLParamEscape percent-encodes everything except unreserved characters,
// including "&", so the result is safe inside a query parameter.
func URLParamEscape(s string) string {
	return rawURLEncode(s)
}

// rawURLEncode encodes per RFC 3986: spaces become %20, "-_.~" are kept.
func rawURLEncode(s string) string {
	// QueryEscape escapes a literal "+" as %2B, so every "+" left is a space.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// AssetURL returns the URL of a file in the theme's assets folder.
func AssetURL(file string) string {
	return "/assets/" + file
}

// AssetImgURL returns the URL of an image in the assets folder. Size is ignored.
func AssetImgURL(file string) string {
	return AssetURL(file)
}

// FileURL returns the URL of an uploaded file.
func FileURL(file string) string {
	return "/files/" + file
}

// FileImgURL returns the URL of an uploaded image. Size is ignored.
func FileImgURL(file, _ string) string {
	return FileURL(file)
}

// GlobalAssetURL returns the URL of a global CDN asset.
func GlobalAssetURL(file string) string {
	return "//cdn.shopify.com/s/global/" + file
}

// ShopifyAssetURL returns the URL of a platform CDN asset.
func ShopifyAssetURL(file string) string {
	return "//cdn.shopify.com/s/shopify/" + file
}

// URLForVendor returns the collection URL listing a vendor's products.
func URLForVendor(vendor string) string {
	return "/collections/vendors?q=" + rawURLEncode(vendor)
}

// URLForType returns the collection URL listing products of a type.
func URLForType(productType string) string {
	return "/collections/types?q=" + rawURLEncode(productType)
}

// Within returns url unchanged; collection scoping does not apply outside the store.
func Within(url string) string {
	return url
}

const placeholderImgURL = "https://placeholdit.imgix.net/~text?txtsize=20&txt=placeholder&w=%d&h=%d"

var namedImgSizes = map[string][2]int{
	"pico":    {16, 16},
	"icon":    {32, 32},
	"thumb":   {50, 50},
	"small":   {100, 100},
	"compact": {160, 160},
	"medium":  {240, 240},
	"large":   {480, 480},
	"grande":  {600, 600},
	"master":  {1024, 1024},
}

// ImgURL returns a placeholder image URL sized like the requested image.
// Size is a name ("thumb", "large", ...) or "WIDTHxHEIGHT"; anything else yields
// 1024x1024.
func ImgURL(_ any, size string) string {
	w, h := imgSize(size)
	return fmt.Sprintf(placeholderImgURL, w, h)
}

// ProductImgURL is ImgURL for product images.
func ProductImgURL(product any, size string) string {
	return ImgURL(product, size)
}

// CollectionImgURL is ImgURL for collection images.
func CollectionImgURL(collection any, size string) string {
	return ImgURL(collection, size)
}

func imgSize(size string) (int, int) {
	if wh, ok := namedImgSizes[size]; ok {
		return wh[0], wh[1]
	}
	ws, hs, ok := strings.Cut(size, "x")
	if !ok {
		return 1024, 1024
	}
	w, errW := strconv.Atoi(ws)
	h, errH := strconv.Atoi(hs)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 1024, 1024
	}
	return w, h
}

var paymentTypes = []string{
	"visa", "master", "american_express", "paypal", "jcb", "diners_club", "maestro",
	"discover", "dankort", "forbrugsforeningen", "dwolla", "bitcoin", "dodgecoin", "litecoin",
}

// PaymentTypeImgURL returns the CDN URL of a payment type's card icon.
func PaymentTypeImgURL(paymentType string) (string, error) {
	if !slices.Contains(paymentTypes, paymentType) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPaymentType, paymentType)
	}
	return "//cdn.shopify.com/s/global/payment_types/creditcards_" + paymentType + ".svg", nil
}
