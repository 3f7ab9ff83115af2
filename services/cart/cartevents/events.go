package cartevents

const (
	TopicName               = "cart"
	cartItemAddedName       = TopicName + ".itemAdded"
	cartItemRemovedName     = TopicName + ".itemRemoved"
	cartQuantityChangedName = TopicName + ".quantityChanged"
	cartClearedName         = TopicName + ".cleared"
)

type CartItemAdded struct {
	ProductUID string
	Quantity   int
}

func (e CartItemAdded) GetEventTypeName() string {
	return cartItemAddedName
}

func (e CartItemAdded) GetAggregateName() string {
	return e.ProductUID
}

type CartItemRemoved struct {
	ProductUID string
}

func (e CartItemRemoved) GetEventTypeName() string {
	return cartItemRemovedName
}

func (e CartItemRemoved) GetAggregateName() string {
	return e.ProductUID
}

type CartQuantityChanged struct {
	ProductUID string
	Quantity   int
}

func (e CartQuantityChanged) GetEventTypeName() string {
	return cartQuantityChangedName
}

func (e CartQuantityChanged) GetAggregateName() string {
	return e.ProductUID
}

type CartCleared struct {
}

func (e CartCleared) GetEventTypeName() string {
	return cartClearedName
}

func (e CartCleared) GetAggregateName() string {
	return "cart"
}
