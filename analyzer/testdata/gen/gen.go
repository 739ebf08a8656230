// Code generated by hand. DO NOT EDIT.

package gen

func Exported() { // want `Exported may panic \(explicit abort\)`
	panic("generated")
}
