// Package mood implements multi-signal mood detection for journal text.
//
// A single piece of text flows through four independent signal extractors
// (lexical sentiment, keyword lexicon density, an external transformer
// classifier, an external generative analyzer) whose outputs the Detector
// fuses into one weighted decision. Extractors that are offline or failing
// contribute a zero weight; the pipeline never propagates their errors.
package mood
