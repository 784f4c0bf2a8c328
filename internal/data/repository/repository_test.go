package repository

// Each concrete repository must satisfy its interface. The embedded
// CollectionReader's variadic ReadPage/ReadAll do not satisfy the
// filterless signatures, so drift here only surfaces at compile time.
var (
	_ UserRepository        = (*userRepository)(nil)
	_ ShopRepository        = (*shopRepository)(nil)
	_ ArtistRepository      = (*artistRepository)(nil)
	_ BrandRepository       = (*brandRepository)(nil)
	_ PieceRepository       = (*pieceRepository)(nil)
	_ LinkRequestRepository = (*linkRequestRepository)(nil)
	_ ShopToBrandRepository = (*shopToBrandRepository)(nil)
)
