// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Worldpack Contributors

package content

import "github.com/invopop/jsonschema"

// MaxShopTabs caps the tab count per shop. The wire format carries the tab
// index as a signed byte; the cap stays well under that.
const MaxShopTabs = 100

// ShopType classifies a server shop.
type ShopType string

// Shop types supported by the content format.
const (
	ShopNormal ShopType = "normal"
	ShopComp   ShopType = "comp"
)

// JSONSchema restricts the shop type to the closed enumeration.
func (ShopType) JSONSchema() *jsonschema.Schema {
	return enumSchema(string(ShopNormal), string(ShopComp))
}

// ServerShop is a purchasable item listing shown by shop NPCs.
type ServerShop struct {
	ShopID uint32     `yaml:"shop_id" json:"shop_id"`
	Type   ShopType   `yaml:"type,omitempty" json:"type,omitempty"`
	Name   string     `yaml:"name,omitempty" json:"name,omitempty"`
	Tabs   []*ShopTab `yaml:"tabs,omitempty" json:"tabs,omitempty"`
}

// ShopTab is one page of shop products.
type ShopTab struct {
	Name     string         `yaml:"name,omitempty" json:"name,omitempty"`
	Products []*ShopProduct `yaml:"products,omitempty" json:"products,omitempty"`
}

// ShopProduct is a single purchasable entry.
type ShopProduct struct {
	ItemID   uint32 `yaml:"item_id" json:"item_id"`
	Price    uint32 `yaml:"price" json:"price"`
	Currency uint32 `yaml:"currency,omitempty" json:"currency,omitempty"`
	Stock    int32  `yaml:"stock,omitempty" json:"stock,omitempty"`
}
