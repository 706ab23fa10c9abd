package usecase

// Client-facing messages of the authorization and lookup failures. Handlers
// use them to gate requests before parsing bodies.
const (
	MsgProfileNotAllowed  = "You are not allowed to access this profile"
	MsgProfileNotFound    = "Profile does not exist"
	MsgInvalidCredentials = "Invalid username or password"

	MsgProductNotSignedIn  = "you must be logged in to post products"
	MsgProductOtherProfile = "You are not allowed to post products for another profile"
	MsgProductNotFound     = "Product does not exist"
	MsgProductEditDenied   = "You are not allowed to edit this product"
	MsgProductDeleteDenied = "You are not allowed to delete this product"

	MsgFavoriteNotSignedIn  = "you must be logged in too favorite products"
	MsgFavoriteOtherProfile = "You are not allowed to favorite products for another profile"
	MsgFavoriteNotFound     = "Favorite does not exist"
	MsgFavoriteDeleteDenied = "You are not allowed to delete this favorite"
)
