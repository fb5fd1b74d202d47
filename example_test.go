package behaviorx_test

import (
	"fmt"
	"strings"

	"github.com/hkbtools/behaviorx"
)

// Example: a two-state door that retracts and extends.
func Example() {
	g := behaviorx.New("OC_exampleBehavior")

	g.AddState("retract", behaviorx.WithAnimation(`animations\retract.hkx`), behaviorx.Looping())
	g.AddState("extend", behaviorx.WithAnimation(`animations\extend.hkx`))

	g.ConnectStates("retract", "extend", "PlayExtend")
	g.ConnectStates("extend", "retract", "PlayRetract")

	g.AddWildcard("retract", "gotoRetract")
	g.AddWildcard("extend", "gotoExtend")

	fmt.Println(strings.Join(g.States(), ", "))
	fmt.Println(strings.Join(g.Events(), ", "))
	// Output:
	// retract, extend
	// PlayExtend, PlayRetract, gotoRetract, gotoExtend
}
