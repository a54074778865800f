package export

// boilerplate holds the two fixed fade sections the engine expects after the
// participants of every cinema. Their values never depend on the record and
// are written byte for byte; decoding recognizes and drops them.
const boilerplate = `[ Action-1 : 1 ]
{ Action-1\Type:d Action-1\Name:s Action-1\Shot:d Action-1\Offset:f Action-1\Duration:f Action-1\SyncPoint:d Action-1\FinishShot:d Action-1\DefaultLength:f Action-1\Effect:d Action-1\Magnitude:f Action-1\Frequency:f Action-1\Color:dddd Action-1\Target:f }
  8                 "CinemaFadeIn"   -1                -1.00                0.50                   -1                     0                       0.50                       0                 1.00                 0.00                 0 0 0 255            0.00
[ Action-2 : 1 ]
{ Action-2\Type:d Action-2\Name:s Action-2\Shot:d Action-2\Offset:f Action-2\Duration:f Action-2\SyncPoint:d Action-2\FinishShot:d Action-2\DefaultLength:f Action-2\Effect:d Action-2\Magnitude:f Action-2\Frequency:f Action-2\Color:dddd Action-2\Target:f }
  8                 "CinemaFadeOut"  -1                -1.00                0.50                   -1                     1                       0.50                       0                 1.00                 0.00                 0 0 0 255            1.00
`
