package products

const (
	queryFindProductByID = `
		SELECT id, name, brand, price
		FROM products
		WHERE id = $1
	`

	queryListProducts = `
		SELECT id, name, brand, price
		FROM products
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	queryCountProducts = `
		SELECT count(*) FROM products
	`

	queryReviewsByUserName = `
		SELECT id, product_id, user_name, rating, comment, created_at
		FROM reviews
		WHERE user_name = $1
		ORDER BY created_at DESC
	`

	querySeedProduct = `
		INSERT INTO products (id, name, brand, price)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`
)
