// Package nodelink converts a core.Graph to and from its persisted form, a
// node-link document compatible with the networkx node_link layout:
//
//	{
//	  "directed": false,
//	  "multigraph": false,
//	  "graph": {},
//	  "nodes": [{"id": "A"}, {"id": "B"}],
//	  "links": [{"source": "A", "target": "B", "weight": 5}]
//	}
//
// Node ids are written as strings. On read, ids may also be integers, and
// the edge array may be named "edges" instead of "links". The order of
// nodes and links carries no meaning.
//
// ToRecord and FromRecord work on the in-memory Record; WriteJSON/ReadJSON
// and WriteYAML/ReadYAML encode it; Save and Load pick the codec from the
// file extension. Every rejected document yields an error wrapping
// ErrMalformed, and no partially built graph is returned.
package nodelink
