package auth

// Identity es la tienda autenticada extraída del token Bearer.
type Identity struct {
	StoreID   int64
	StoreName string
}
