package raster

// Object is one cell of an object layer: an independently positioned bitmap
// blit with its own flip/rotate flags and priority bit, linked into its
// layer's singly-linked draw order. Grounded on Draw.c's `object` struct and
// DrawLayerObjectScanline's list walk.
type Object struct {
	X, Y          int
	Width, Height int
	Flags         Flags
	Visible       bool
	Bitmap        *Bitmap

	next *Object
}

// ObjectList is a singly-linked, z-ordered sequence of Objects, mirroring
// the original's intrusive `next` pointer list.
type ObjectList struct {
	head *Object
}

// Add appends obj to the end of the list, preserving insertion (bottom-most
// drawn first) order.
func (ol *ObjectList) Add(obj *Object) {
	if ol.head == nil {
		ol.head = obj
		return
	}
	cur := ol.head
	for cur.next != nil {
		cur = cur.next
	}
	cur.next = obj
}

// Each calls fn for every object in list order.
func (ol *ObjectList) Each(fn func(*Object)) {
	for cur := ol.head; cur != nil; cur = cur.next {
		fn(cur)
	}
}

// inLine reports whether an object's vertical extent covers scanline nscan,
// swapping width/height first when rotated (spec §4.4): a rotated object's
// on-screen footprint is its own height wide and width tall.
func (o *Object) inLine(nscan int) (y1, y2 int, ok bool) {
	w, h := o.Width, o.Height
	if o.Flags&FlagRotate != 0 {
		w, h = h, w
	}
	y1, y2 = o.Y, o.Y+h
	if nscan < y1 || nscan >= y2 {
		return 0, 0, false
	}
	return y1, y2, w > 0
}
