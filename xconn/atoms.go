package xconn

import "github.com/jezek/xgb/xproto"

// Atom interns name, consulting a local cache first. Atoms never change
// for the lifetime of the server, so cached entries are valid as long
// as the connection.
func (c *Connection) Atom(name string) (xproto.Atom, error) {
	if a, ok := c.atoms[name]; ok {
		return a, nil
	}
	r, err := xproto.InternAtom(c.conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return xproto.AtomNone, err
	}
	c.atoms[name] = r.Atom
	return r.Atom, nil
}
