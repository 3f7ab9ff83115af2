package cart

import (
	"net/http"

	formcodec "github.com/go-playground/form/v4"

	"github.com/MarcGrol/shopfront/lib/myerrors"
)

type addLineForm struct {
	ProductUID string  `form:"productUid"`
	Name       string  `form:"name"`
	Price      float64 `form:"price"`
	Image      string  `form:"image"`
}

type changeQuantityForm struct {
	Delta int `form:"delta"`
}

func parseAddLineForm(r *http.Request) (CartLine, error) {
	err := r.ParseForm()
	if err != nil {
		return CartLine{}, myerrors.NewInvalidInputError(err)
	}

	f := addLineForm{}
	err = formcodec.NewDecoder().Decode(&f, r.Form)
	if err != nil {
		return CartLine{}, myerrors.NewInvalidInputError(err)
	}

	return CartLine{
		ProductUID: f.ProductUID,
		Name:       f.Name,
		Price:      f.Price,
		Image:      f.Image,
	}, nil
}

func parseChangeQuantityForm(r *http.Request) (int, error) {
	err := r.ParseForm()
	if err != nil {
		return 0, myerrors.NewInvalidInputError(err)
	}

	f := changeQuantityForm{}
	err = formcodec.NewDecoder().Decode(&f, r.Form)
	if err != nil {
		return 0, myerrors.NewInvalidInputError(err)
	}

	return f.Delta, nil
}
