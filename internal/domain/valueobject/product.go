package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// Product – closed enumeration of BNPL products
// ---------------------------------------------------------------------------

// Product identifies a financing product an applicant can be matched to.
type Product string

const (
	ProductSeedsBNPL      Product = "Seeds_BNPL"
	ProductFertilizerBNPL Product = "Fertilizer_BNPL"
	ProductEquipmentLease Product = "Equipment_Lease"
	ProductInputBundle    Product = "Input_Bundle"
	ProductCashAdvance    Product = "Cash_Advance"
	ProductPremiumBNPL    Product = "Premium_BNPL"
)

// AllProducts lists every product in catalogue order.
var AllProducts = []Product{
	ProductSeedsBNPL,
	ProductFertilizerBNPL,
	ProductEquipmentLease,
	ProductInputBundle,
	ProductCashAdvance,
	ProductPremiumBNPL,
}

var validProducts = map[Product]struct{}{
	ProductSeedsBNPL:      {},
	ProductFertilizerBNPL: {},
	ProductEquipmentLease: {},
	ProductInputBundle:    {},
	ProductCashAdvance:    {},
	ProductPremiumBNPL:    {},
}

// ParseProduct validates a raw string against the product catalogue.
func ParseProduct(s string) (Product, error) {
	p := Product(s)
	if _, ok := validProducts[p]; !ok {
		return "", fmt.Errorf("invalid product: %q", s)
	}
	return p, nil
}

// String returns the string representation of the product.
func (p Product) String() string { return string(p) }

// IsValid reports whether the product belongs to the catalogue.
func (p Product) IsValid() bool {
	_, ok := validProducts[p]
	return ok
}

// ProductInfo carries display metadata for a product.
type ProductInfo struct {
	Name        string
	Description string
}

var productInfo = map[Product]ProductInfo{
	ProductSeedsBNPL:      {Name: "Seeds BNPL", Description: "Seed financing for maize/rice farmers"},
	ProductFertilizerBNPL: {Name: "Fertilizer BNPL", Description: "Input financing for high-intensity crops"},
	ProductEquipmentLease: {Name: "Equipment Lease", Description: "Machinery leasing for commercial farms"},
	ProductInputBundle:    {Name: "Input Bundle", Description: "Multi-input package for diversified farms"},
	ProductCashAdvance:    {Name: "Cash Advance", Description: "Short-term cash bridge for small needs"},
	ProductPremiumBNPL:    {Name: "Premium BNPL", Description: "General BNPL for established customers"},
}

// Info returns display metadata for the product. Unknown products get a
// generic placeholder rather than an error.
func (p Product) Info() ProductInfo {
	if info, ok := productInfo[p]; ok {
		return info
	}
	return ProductInfo{Name: string(p), Description: "Unknown product"}
}
