// Code generated by hand. DO NOT EDIT.

package generated

func Exported() {
	panic("generated")
}
