// Package style holds bonsai's terminal presentation: entry icons, the
// colour palette used for tree lines and messages, and colour detection.
package style
