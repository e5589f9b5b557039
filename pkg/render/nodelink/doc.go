// Package nodelink exports closure graphs as Graphviz node-link diagrams:
// DOT text, file export, and optional SVG rendering.
package nodelink
