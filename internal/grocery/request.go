// Copyright (c) Rowant Labs
// SPDX-License-Identifier: BUSL-1.1

package grocery

import "github.com/rowant-labs/Kitchly/internal/kitchendb"

// Affiliate tracking stamped on every outbound request. Constant across
// requests and not caller-configurable.
const (
	utmCampaign = "kitchly_assistant"
	utmMedium   = "chat"
	utmSource   = "kitchly"
	utmTerm     = "grocery_order"
	utmContent  = "order_link"
)

type wireMeasurement struct {
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type wireIngredient struct {
	Name         string            `json:"name"`
	DisplayText  string            `json:"displayText,omitempty"`
	Measurements []wireMeasurement `json:"measurements"`
}

type wireLineItem struct {
	Name         string            `json:"name"`
	DisplayText  string            `json:"displayText,omitempty"`
	Measurements []wireMeasurement `json:"lineItemMeasurements"`
}

type landingPageConfiguration struct {
	UTMCampaign        string `json:"utm_campaign"`
	UTMMedium          string `json:"utm_medium"`
	UTMSource          string `json:"utm_source"`
	UTMTerm            string `json:"utm_term"`
	UTMContent         string `json:"utm_content"`
	PartnerLinkbackURL string `json:"partnerLinkbackUrl"`
	EnablePantryItems  bool   `json:"enablePantryItems"`
}

type recipeRequest struct {
	Title        string                   `json:"title"`
	ImageURL     string                   `json:"imageUrl,omitempty"`
	LinkType     string                   `json:"linkType"`
	Ingredients  []wireIngredient         `json:"ingredients"`
	Instructions []string                 `json:"instructions"`
	LandingPage  landingPageConfiguration `json:"landingPageConfiguration"`
}

type shoppingListRequest struct {
	Title       string                   `json:"title"`
	LinkType    string                   `json:"linkType"`
	LineItems   []wireLineItem           `json:"lineItems"`
	LandingPage landingPageConfiguration `json:"landingPageConfiguration"`
}

type orderResponse struct {
	OrdersLinkURL string `json:"ordersLinkUrl"`
}

func (c *Client) landingPage() landingPageConfiguration {
	return landingPageConfiguration{
		UTMCampaign:        utmCampaign,
		UTMMedium:          utmMedium,
		UTMSource:          utmSource,
		UTMTerm:            utmTerm,
		UTMContent:         utmContent,
		PartnerLinkbackURL: c.linkbackURL,
		EnablePantryItems:  true,
	}
}

// wireMeasurements converts measurements, defaulting an unmeasured item to a
// single nominal unit. The API requires at least one measurement per line.
func wireMeasurements(ms []kitchendb.Measurement) []wireMeasurement {
	if len(ms) == 0 {
		return []wireMeasurement{{Quantity: 1, Unit: "unit"}}
	}
	out := make([]wireMeasurement, len(ms))
	for i, m := range ms {
		out[i] = wireMeasurement{Quantity: m.Quantity, Unit: m.Unit}
	}
	return out
}

func wireIngredients(items []kitchendb.Ingredient) []wireIngredient {
	out := make([]wireIngredient, len(items))
	for i, item := range items {
		out[i] = wireIngredient{
			Name:         item.Name,
			DisplayText:  item.DisplayText,
			Measurements: wireMeasurements(item.Measurements),
		}
	}
	return out
}

func wireLineItems(items []kitchendb.Ingredient) []wireLineItem {
	out := make([]wireLineItem, len(items))
	for i, item := range items {
		out[i] = wireLineItem{
			Name:         item.Name,
			DisplayText:  item.DisplayText,
			Measurements: wireMeasurements(item.Measurements),
		}
	}
	return out
}
