package layout

import "gioui.org/layout"

type Context = layout.Context
type Dimensions = layout.Dimensions
type Widget = layout.Widget
type Inset = layout.Inset

var UniformInset = layout.UniformInset
var NewContext = layout.NewContext
