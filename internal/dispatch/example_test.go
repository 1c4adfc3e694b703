package dispatch_test

import (
	"context"
	"fmt"

	"github.com/aryankumar/kubetab/internal/dispatch"
	"github.com/aryankumar/kubetab/internal/row"
)

func ExampleTree_Dispatch() {
	view := dispatch.HandlerFunc(func(ctx context.Context, req dispatch.Request) (dispatch.Result, error) {
		return dispatch.Result{Rows: []row.Row{row.New(row.Str("namespace", req.Namespace))}}, nil
	})

	tree := dispatch.NewTree(
		dispatch.Group("config", "Inspect the kubeconfig",
			dispatch.Command("view", "Show the kubeconfig", view),
		),
	)

	res, ok, err := tree.Dispatch(context.Background(), dispatch.Request{
		Namespace: "default",
		Tokens:    []string{"config", "view"},
	})
	fmt.Println(ok, err, res.Rows[0].GetString("namespace"))

	_, ok, err = tree.Dispatch(context.Background(), dispatch.Request{Tokens: []string{"config"}})
	fmt.Println(ok, err)
	// Output:
	// true <nil> default
	// false <nil>
}

func ExampleTree_Suggest() {
	tree := dispatch.NewTree(
		dispatch.Group("config", "",
			dispatch.Command("view", "", nil),
			dispatch.Command("validate", "", nil),
		),
	)

	fmt.Println(tree.Suggest([]string{"config", "veiw"}))
	// Output:
	// [view]
}
