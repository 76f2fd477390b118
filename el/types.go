package el

import "github.com/strata-web/strata/pkg/vdom"

// Core type aliases so view code needs only the el import.

type VNode = vdom.VNode
type Attr = vdom.Attr
type Props = vdom.Props
type EventHandler = vdom.EventHandler
