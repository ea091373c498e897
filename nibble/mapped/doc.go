// Package mapped stores a nibble sequence in a file.
//
// A nibble file is a 32-byte header (see internal/format) followed by a
// fixed number of pairs. On unix the file is memory mapped and a File is a
// nibble.View directly over the mapping; elsewhere the file is read into
// memory and written back on Flush.
//
// Mutations update the header length immediately and record the touched
// pages with a dirty.Tracker. Flush writes the data pages first and the
// header page last, so a crash between the two leaves the old length in
// place.
//
//	f, err := mapped.Create("digits.nib", 64, nil)
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//	for _, d := range []byte{3, 1, 4, 1, 5} {
//	    if err := f.Push(nibble.Lo(d)); err != nil {
//	        return err
//	    }
//	}
//	return f.Flush(ctx)
package mapped
