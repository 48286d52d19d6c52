package domain

import (
	interfaces "eatgo/internal/domain/interfaces"
	types "eatgo/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	AccessToken      = types.AccessToken
	Region           = types.Region
	Category         = types.Category
	Restaurant       = types.Restaurant
	Review           = types.Review
	Reviews          = types.Reviews
	RestaurantQuery  = types.RestaurantQuery
	Credentials      = types.Credentials
	ReviewSubmission = types.ReviewSubmission
	Fields           = types.Fields
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	APIClient  = interfaces.APIClient
	TokenStore = interfaces.TokenStore
)

// AccessTokenKey is the durable storage key under which the access token lives.
const AccessTokenKey = types.AccessTokenKey
