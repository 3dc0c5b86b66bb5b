package locator

// Login locates elements of the login screen.
var Login = struct {
	Logo     Locator
	Username Locator
	Password Locator
	Submit   Locator
	Error    Locator
}{
	Logo:     CSS("div.login_logo"),
	Username: ID("user-name"),
	Password: ID("password"),
	Submit:   ID("login-button"),
	Error:    CSS("h3[data-test='error']"),
}

// Products locates elements of the inventory (product listing) screen.
var Products = struct {
	AppLogo    Locator
	Title      Locator
	Item       Locator // one per product card
	ItemName   Locator // relative to Item
	ItemPrice  Locator // relative to Item
	AddButtons Locator
	CartLink   Locator
	CartBadge  Locator
}{
	AppLogo:    XPath("//div[@class='app_logo' and text()='Swag Labs']"),
	Title:      CSS("span.title[data-test='title']"),
	Item:       CSS("div.inventory_item"),
	ItemName:   CSS("div.inventory_item_name[data-test='inventory-item-name']"),
	ItemPrice:  CSS("div.inventory_item_price"),
	AddButtons: CSS("button[data-test^='add-to-cart']"),
	CartLink:   ID("shopping_cart_container"),
	CartBadge:  ClassName("shopping_cart_badge"),
}

// Cart locates elements of the cart screen.
var Cart = struct {
	Title         Locator
	ItemName      Locator
	ItemQuantity  Locator
	ItemPrice     Locator
	RemoveButtons Locator
	Checkout      Locator
}{
	Title:         XPath("//span[@class='title' and text()='Your Cart']"),
	ItemName:      CSS("div.inventory_item_name[data-test='inventory-item-name']"),
	ItemQuantity:  CSS("div.cart_quantity"),
	ItemPrice:     CSS("div.inventory_item_price"),
	RemoveButtons: XPath("//button[text()='Remove']"),
	Checkout:      XPath("//button[@data-test='checkout']"),
}

// CheckoutInfo locates elements of the "Your Information" form.
var CheckoutInfo = struct {
	Title     Locator
	FirstName Locator
	LastName  Locator
	ZipCode   Locator
	Continue  Locator
	Error     Locator
}{
	Title:     XPath("//span[@class='title' and text()='Checkout: Your Information']"),
	FirstName: ID("first-name"),
	LastName:  ID("last-name"),
	ZipCode:   ID("postal-code"),
	Continue:  XPath("//input[@data-test='continue']"),
	Error:     XPath("//h3[@data-test='error']"),
}

// CheckoutOverview locates elements of the order overview screen.
// Item* locators are relative to a single LineItem node.
var CheckoutOverview = struct {
	Title           Locator
	LineItem        Locator
	ItemQuantity    Locator
	ItemName        Locator
	ItemDescription Locator
	ItemPrice       Locator
	Subtotal        Locator
	Tax             Locator
	Total           Locator
	Finish          Locator
}{
	Title:           CSS("span.title[data-test='title']"),
	LineItem:        CSS("div.cart_item"),
	ItemQuantity:    ClassName("cart_quantity"),
	ItemName:        ClassName("inventory_item_name"),
	ItemDescription: ClassName("inventory_item_desc"),
	ItemPrice:       ClassName("inventory_item_price"),
	Subtotal:        CSS("div[data-test='subtotal-label']"),
	Tax:             CSS("div[data-test='tax-label']"),
	Total:           CSS("div.summary_total_label"),
	Finish:          XPath("//button[@data-test='finish']"),
}

// CheckoutComplete locates elements of the order confirmation screen.
var CheckoutComplete = struct {
	Title    Locator
	ThankYou Locator
	BackHome Locator
}{
	Title:    XPath("//span[@data-test='title']"),
	ThankYou: XPath("//h2[@class='complete-header']"),
	BackHome: XPath("//button[@data-test='back-to-products']"),
}

// AddToCart locates the "Add to cart" control of the named product.
func AddToCart(product string) Locator {
	return CSS("button[data-test='add-to-cart-" + Slug(product) + "']")
}

// RemoveFromCart locates the "Remove" control of the named product.
func RemoveFromCart(product string) Locator {
	return CSS("button[data-test='remove-" + Slug(product) + "']")
}

// CartItemNamed locates the name label of a cart line showing exactly the given product.
func CartItemNamed(product string) Locator {
	return XPath("//div[@data-test='inventory-item-name' and text()=" + XPathLiteral(product) + "]")
}
