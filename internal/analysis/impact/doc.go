// Package impact classifies news headlines into coarse impact labels
// (critical, positive, neutral, none) using ordered keyword lists.
package impact
