// Package io writes converted cognitive maps as JSON or CSV.
//
// # JSON Format
//
// [WriteJSON] emits a single object with three arrays named after the
// tables. Null columns are written as JSON null:
//
//	{
//	  "nodes": [
//	    {"name": "elem-1", "id": "node-1", "refno": 1, "label": "A",
//	     "type": null, "x": 20, "y": -40, "description": null, "tags": null}
//	  ],
//	  "edges": [
//	    {"name": "conn-1", "id": "edge-1", "refno": 1, "from": "elem-1",
//	     "to": "elem-2", "polarity": "+", "curvature": null, "weight": 1,
//	     "description": null}
//	  ],
//	  "node_styles": [
//	    {"type": "Goal", "font_colour": "#00ff00", "font_weight": "bold"}
//	  ]
//	}
//
// [ReadJSON] decodes the same format, which is useful for tooling that
// post-processes cogmap output. It does not read Decision Explorer XML;
// use package dex for that.
//
// # CSV Format
//
// [WriteCSV] writes one table with a header row. Columns appear in the
// order of the JSON fields above and nulls are written as NA, the
// convention of R and most statistics packages. CSV cannot tell a null
// from a value that is literally "NA"; JSON can. [ExportCSV] writes the
// three tables as nodes.csv, edges.csv and node_styles.csv into a
// directory.
package io
