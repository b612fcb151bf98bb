/*
Package melody supplies the note material around the Markov core: the
demonstration melodies with their duration tracks, random duration
generation, and loading of user melodies from JSON files.

Durations are deliberately not part of the Markov model. Generated
melodies get durations drawn independently from a small palette, so
pitch and rhythm stay decoupled.
*/
package melody
