package postgres

// Typed descriptors of the report schema. The planners reference tables and
// columns only through these values, so a renamed column breaks compilation
// in one place instead of silently misspelling SQL somewhere in a string.

type table struct {
	name  string
	alias string
}

// as rebinds the table under another alias, for self-joins and CTE bodies.
func (t table) as(alias string) table {
	return table{name: t.name, alias: alias}
}

// from renders the FROM/JOIN reference, e.g. `"order" o`.
func (t table) from() string {
	return t.name + " " + t.alias
}

func (t table) col(name string) column {
	return column{table: t, name: name}
}

type column struct {
	table table
	name  string
}

// ref renders the qualified column reference, e.g. `o.created_at`.
func (c column) ref() string {
	return c.table.alias + "." + c.name
}

// "order" is a reserved word and must stay quoted in generated SQL.
var (
	orderTable    = table{name: `"order"`, alias: "o"}
	historyTable  = table{name: "order_status_history", alias: "h"}
	itemTable     = table{name: "order_item", alias: "oi"}
	productTable  = table{name: "product", alias: "p"}
	categoryTable = table{name: "category", alias: "c"}
)

var (
	orderID        = orderTable.col("id")
	orderStoreID   = orderTable.col("store_id")
	orderStatus    = orderTable.col("status")
	orderCreatedAt = orderTable.col("created_at")

	historyOrderID = historyTable.col("order_id")
	historyStatus  = historyTable.col("status")

	itemOrderID   = itemTable.col("order_id")
	itemProductID = itemTable.col("product_id")
	itemQuantity  = itemTable.col("quantity")

	productID         = productTable.col("id")
	productPrice      = productTable.col("price")
	productCategoryID = productTable.col("category_id")

	categoryID       = categoryTable.col("id")
	categoryName     = categoryTable.col("name")
	categoryParentID = categoryTable.col("parent_id")
)
