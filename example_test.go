package prefid_test

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/joshjon/kit/errtag"

	"github.com/coro-sh/prefid"
)

type userPrefix struct{}

func (userPrefix) Prefix() string { return "user" }

// UserID identifies a user.
type UserID struct {
	prefid.ID[userPrefix]
}

type orderPrefix struct{}

func (orderPrefix) Prefix() string { return "order" }

// OrderID identifies an order.
type OrderID struct {
	prefid.ID[orderPrefix]
}

type Order struct {
	ID     OrderID `json:"id"`
	UserID UserID  `json:"user_id"`
}

func Example() {
	u := uuid.MustParse("3fa85f64-5717-4562-b3fc-2c963f66afa6")

	order := Order{
		ID:     prefid.FromUUID[OrderID](u),
		UserID: prefid.FromUUID[UserID](u),
	}
	b, _ := json.Marshal(order)
	fmt.Println(string(b))

	var decoded Order
	_ = json.Unmarshal(b, &decoded)
	fmt.Println(decoded.UserID, decoded.UserID == order.UserID)
	// Output:
	// {"id":"order-3fa85f64-5717-4562-b3fc-2c963f66afa6","user_id":"user-3fa85f64-5717-4562-b3fc-2c963f66afa6"}
	// user-3fa85f64-5717-4562-b3fc-2c963f66afa6 true
}

func ExampleParse() {
	id, err := prefid.Parse[UserID]("user-3fa85f64-5717-4562-b3fc-2c963f66afa6")
	fmt.Println(id.UUID(), err)

	_, err = prefid.Parse[UserID]("order-3fa85f64-5717-4562-b3fc-2c963f66afa6")
	fmt.Println(errtag.HasTag[prefid.ErrTagInvalidPrefix](err))

	_, err = prefid.Parse[UserID]("user-3fa85f64")
	fmt.Println(errtag.HasTag[prefid.ErrTagInvalidUUID](err))
	// Output:
	// 3fa85f64-5717-4562-b3fc-2c963f66afa6 <nil>
	// true
	// true
}
