package bfm

// The 256-entry Brainfuck byte-generator table. Entry v produces v in the
// cell it terminates in when run at the scratch base with the span zeroed.
// Entries are the shortest of a direct '+' run, a direct '-' run on the
// zeroed cell, and multiplicative a[>b<-]>±c constructions; the table was
// generated and checked against a reference interpreter.
var bfConstants = [256]bfConstant{
	{``, 1, 0}, // 0
	{`+`, 1, 0}, // 1
	{`++`, 1, 0}, // 2
	{`+++`, 1, 0}, // 3
	{`++++`, 1, 0}, // 4
	{`+++++`, 1, 0}, // 5
	{`++++++`, 1, 0}, // 6
	{`+++++++`, 1, 0}, // 7
	{`++++++++`, 1, 0}, // 8
	{`+++++++++`, 1, 0}, // 9
	{`++++++++++`, 1, 0}, // 10
	{`+++++++++++`, 1, 0}, // 11
	{`++++++++++++`, 1, 0}, // 12
	{`+++++++++++++`, 1, 0}, // 13
	{`++++++++++++++`, 1, 0}, // 14
	{`+++[>+++++<-]>`, 2, 1}, // 15
	{`++++[>++++<-]>`, 2, 1}, // 16
	{`++++[>++++<-]>+`, 2, 1}, // 17
	{`+++[>++++++<-]>`, 2, 1}, // 18
	{`+++[>++++++<-]>+`, 2, 1}, // 19
	{`++++[>+++++<-]>`, 2, 1}, // 20
	{`+++[>+++++++<-]>`, 2, 1}, // 21
	{`+++[>+++++++<-]>+`, 2, 1}, // 22
	{`++++[>++++++<-]>-`, 2, 1}, // 23
	{`++++[>++++++<-]>`, 2, 1}, // 24
	{`+++++[>+++++<-]>`, 2, 1}, // 25
	{`+++++[>+++++<-]>+`, 2, 1}, // 26
	{`+++[>+++++++++<-]>`, 2, 1}, // 27
	{`++++[>+++++++<-]>`, 2, 1}, // 28
	{`++++[>+++++++<-]>+`, 2, 1}, // 29
	{`+++++[>++++++<-]>`, 2, 1}, // 30
	{`+++++[>++++++<-]>+`, 2, 1}, // 31
	{`++++[>++++++++<-]>`, 2, 1}, // 32
	{`++++[>++++++++<-]>+`, 2, 1}, // 33
	{`+++++[>+++++++<-]>-`, 2, 1}, // 34
	{`+++++[>+++++++<-]>`, 2, 1}, // 35
	{`++++++[>++++++<-]>`, 2, 1}, // 36
	{`++++++[>++++++<-]>+`, 2, 1}, // 37
	{`++++++[>++++++<-]>++`, 2, 1}, // 38
	{`+++++[>++++++++<-]>-`, 2, 1}, // 39
	{`+++++[>++++++++<-]>`, 2, 1}, // 40
	{`+++++[>++++++++<-]>+`, 2, 1}, // 41
	{`++++++[>+++++++<-]>`, 2, 1}, // 42
	{`++++++[>+++++++<-]>+`, 2, 1}, // 43
	{`++++[>+++++++++++<-]>`, 2, 1}, // 44
	{`+++++[>+++++++++<-]>`, 2, 1}, // 45
	{`+++++[>+++++++++<-]>+`, 2, 1}, // 46
	{`++++++[>++++++++<-]>-`, 2, 1}, // 47
	{`++++++[>++++++++<-]>`, 2, 1}, // 48
	{`+++++++[>+++++++<-]>`, 2, 1}, // 49
	{`+++++[>++++++++++<-]>`, 2, 1}, // 50
	{`+++++[>++++++++++<-]>+`, 2, 1}, // 51
	{`++++[>+++++++++++++<-]>`, 2, 1}, // 52
	{`++++++[>+++++++++<-]>-`, 2, 1}, // 53
	{`++++++[>+++++++++<-]>`, 2, 1}, // 54
	{`+++++[>+++++++++++<-]>`, 2, 1}, // 55
	{`+++++++[>++++++++<-]>`, 2, 1}, // 56
	{`+++++++[>++++++++<-]>+`, 2, 1}, // 57
	{`+++++++[>++++++++<-]>++`, 2, 1}, // 58
	{`++++++[>++++++++++<-]>-`, 2, 1}, // 59
	{`++++++[>++++++++++<-]>`, 2, 1}, // 60
	{`++++++[>++++++++++<-]>+`, 2, 1}, // 61
	{`+++++++[>+++++++++<-]>-`, 2, 1}, // 62
	{`+++++++[>+++++++++<-]>`, 2, 1}, // 63
	{`++++++++[>++++++++<-]>`, 2, 1}, // 64
	{`++++++++[>++++++++<-]>+`, 2, 1}, // 65
	{`++++++[>+++++++++++<-]>`, 2, 1}, // 66
	{`++++++[>+++++++++++<-]>+`, 2, 1}, // 67
	{`++++++[>+++++++++++<-]>++`, 2, 1}, // 68
	{`+++++++[>++++++++++<-]>-`, 2, 1}, // 69
	{`+++++++[>++++++++++<-]>`, 2, 1}, // 70
	{`+++++++[>++++++++++<-]>+`, 2, 1}, // 71
	{`++++++++[>+++++++++<-]>`, 2, 1}, // 72
	{`++++++++[>+++++++++<-]>+`, 2, 1}, // 73
	{`++++++++[>+++++++++<-]>++`, 2, 1}, // 74
	{`+++++[>+++++++++++++++<-]>`, 2, 1}, // 75
	{`+++++++[>+++++++++++<-]>-`, 2, 1}, // 76
	{`+++++++[>+++++++++++<-]>`, 2, 1}, // 77
	{`++++++[>+++++++++++++<-]>`, 2, 1}, // 78
	{`++++++++[>++++++++++<-]>-`, 2, 1}, // 79
	{`++++++++[>++++++++++<-]>`, 2, 1}, // 80
	{`+++++++++[>+++++++++<-]>`, 2, 1}, // 81
	{`+++++++++[>+++++++++<-]>+`, 2, 1}, // 82
	{`+++++++[>++++++++++++<-]>-`, 2, 1}, // 83
	{`+++++++[>++++++++++++<-]>`, 2, 1}, // 84
	{`+++++++[>++++++++++++<-]>+`, 2, 1}, // 85
	{`+++++++[>++++++++++++<-]>++`, 2, 1}, // 86
	{`++++++++[>+++++++++++<-]>-`, 2, 1}, // 87
	{`++++++++[>+++++++++++<-]>`, 2, 1}, // 88
	{`++++++++[>+++++++++++<-]>+`, 2, 1}, // 89
	{`+++++++++[>++++++++++<-]>`, 2, 1}, // 90
	{`+++++++[>+++++++++++++<-]>`, 2, 1}, // 91
	{`+++++++[>+++++++++++++<-]>+`, 2, 1}, // 92
	{`+++++++[>+++++++++++++<-]>++`, 2, 1}, // 93
	{`++++++++[>++++++++++++<-]>--`, 2, 1}, // 94
	{`++++++++[>++++++++++++<-]>-`, 2, 1}, // 95
	{`++++++++[>++++++++++++<-]>`, 2, 1}, // 96
	{`++++++++[>++++++++++++<-]>+`, 2, 1}, // 97
	{`+++++++[>++++++++++++++<-]>`, 2, 1}, // 98
	{`+++++++++[>+++++++++++<-]>`, 2, 1}, // 99
	{`++++++++++[>++++++++++<-]>`, 2, 1}, // 100
	{`++++++++++[>++++++++++<-]>+`, 2, 1}, // 101
	{`++++++++++[>++++++++++<-]>++`, 2, 1}, // 102
	{`++++++++[>+++++++++++++<-]>-`, 2, 1}, // 103
	{`++++++++[>+++++++++++++<-]>`, 2, 1}, // 104
	{`+++++++[>+++++++++++++++<-]>`, 2, 1}, // 105
	{`+++++++[>+++++++++++++++<-]>+`, 2, 1}, // 106
	{`+++++++++[>++++++++++++<-]>-`, 2, 1}, // 107
	{`+++++++++[>++++++++++++<-]>`, 2, 1}, // 108
	{`+++++++++[>++++++++++++<-]>+`, 2, 1}, // 109
	{`++++++++++[>+++++++++++<-]>`, 2, 1}, // 110
	{`++++++++++[>+++++++++++<-]>+`, 2, 1}, // 111
	{`++++++++[>++++++++++++++<-]>`, 2, 1}, // 112
	{`++++++++[>++++++++++++++<-]>+`, 2, 1}, // 113
	{`++++++++[>++++++++++++++<-]>++`, 2, 1}, // 114
	{`+++++++++[>+++++++++++++<-]>--`, 2, 1}, // 115
	{`+++++++++[>+++++++++++++<-]>-`, 2, 1}, // 116
	{`+++++++++[>+++++++++++++<-]>`, 2, 1}, // 117
	{`+++++++++[>+++++++++++++<-]>+`, 2, 1}, // 118
	{`++++++++++[>++++++++++++<-]>-`, 2, 1}, // 119
	{`++++++++++[>++++++++++++<-]>`, 2, 1}, // 120
	{`+++++++++++[>+++++++++++<-]>`, 2, 1}, // 121
	{`+++++++++++[>+++++++++++<-]>+`, 2, 1}, // 122
	{`+++++++++++[>+++++++++++<-]>++`, 2, 1}, // 123
	{`+++++++++[>++++++++++++++<-]>--`, 2, 1}, // 124
	{`+++++++++[>++++++++++++++<-]>-`, 2, 1}, // 125
	{`+++++++++[>++++++++++++++<-]>`, 2, 1}, // 126
	{`+++++++++[>++++++++++++++<-]>+`, 2, 1}, // 127
	{`++++++++[>++++++++++++++++<-]>`, 2, 1}, // 128
	{`++++++++++[>+++++++++++++<-]>-`, 2, 1}, // 129
	{`++++++++++[>+++++++++++++<-]>`, 2, 1}, // 130
	{`++++++++++[>+++++++++++++<-]>+`, 2, 1}, // 131
	{`+++++++++++[>++++++++++++<-]>`, 2, 1}, // 132
	{`+++++++++++[>++++++++++++<-]>+`, 2, 1}, // 133
	{`+++++++++[>+++++++++++++++<-]>-`, 2, 1}, // 134
	{`+++++++++[>+++++++++++++++<-]>`, 2, 1}, // 135
	{`++++++++[>+++++++++++++++++<-]>`, 2, 1}, // 136
	{`++++++++[>+++++++++++++++++<-]>+`, 2, 1}, // 137
	{`++++++++++[>++++++++++++++<-]>--`, 2, 1}, // 138
	{`++++++++++[>++++++++++++++<-]>-`, 2, 1}, // 139
	{`++++++++++[>++++++++++++++<-]>`, 2, 1}, // 140
	{`++++++++++[>++++++++++++++<-]>+`, 2, 1}, // 141
	{`+++++++++++[>+++++++++++++<-]>-`, 2, 1}, // 142
	{`+++++++++++[>+++++++++++++<-]>`, 2, 1}, // 143
	{`++++++++++++[>++++++++++++<-]>`, 2, 1}, // 144
	{`++++++++++++[>++++++++++++<-]>+`, 2, 1}, // 145
	{`++++++++++++[>++++++++++++<-]>++`, 2, 1}, // 146
	{`++++++++++++[>++++++++++++<-]>+++`, 2, 1}, // 147
	{`++++++++++[>+++++++++++++++<-]>--`, 2, 1}, // 148
	{`++++++++++[>+++++++++++++++<-]>-`, 2, 1}, // 149
	{`++++++++++[>+++++++++++++++<-]>`, 2, 1}, // 150
	{`++++++++++[>+++++++++++++++<-]>+`, 2, 1}, // 151
	{`++++++++[>+++++++++++++++++++<-]>`, 2, 1}, // 152
	{`+++++++++[>+++++++++++++++++<-]>`, 2, 1}, // 153
	{`+++++++++++[>++++++++++++++<-]>`, 2, 1}, // 154
	{`+++++++++++[>++++++++++++++<-]>+`, 2, 1}, // 155
	{`++++++++++++[>+++++++++++++<-]>`, 2, 1}, // 156
	{`++++++++++++[>+++++++++++++<-]>+`, 2, 1}, // 157
	{`++++++++++++[>+++++++++++++<-]>++`, 2, 1}, // 158
	{`++++++++++[>++++++++++++++++<-]>-`, 2, 1}, // 159
	{`++++++++++[>++++++++++++++++<-]>`, 2, 1}, // 160
	{`++++++++++[>++++++++++++++++<-]>+`, 2, 1}, // 161
	{`+++++++++[>++++++++++++++++++<-]>`, 2, 1}, // 162
	{`+++++++++[>++++++++++++++++++<-]>+`, 2, 1}, // 163
	{`+++++++++++[>+++++++++++++++<-]>-`, 2, 1}, // 164
	{`+++++++++++[>+++++++++++++++<-]>`, 2, 1}, // 165
	{`+++++++++++[>+++++++++++++++<-]>+`, 2, 1}, // 166
	{`++++++++++++[>++++++++++++++<-]>-`, 2, 1}, // 167
	{`++++++++++++[>++++++++++++++<-]>`, 2, 1}, // 168
	{`+++++++++++++[>+++++++++++++<-]>`, 2, 1}, // 169
	{`++++++++++[>+++++++++++++++++<-]>`, 2, 1}, // 170
	{`+++++++++[>+++++++++++++++++++<-]>`, 2, 1}, // 171
	{`+++++++++[>+++++++++++++++++++<-]>+`, 2, 1}, // 172
	{`+++++++++[>+++++++++++++++++++<-]>++`, 2, 1}, // 173
	{`+++++++++++[>++++++++++++++++<-]>--`, 2, 1}, // 174
	{`+++++++++++[>++++++++++++++++<-]>-`, 2, 1}, // 175
	{`+++++++++++[>++++++++++++++++<-]>`, 2, 1}, // 176
	{`+++++++++++[>++++++++++++++++<-]>+`, 2, 1}, // 177
	{`+++++++++++[>++++++++++++++++<-]>++`, 2, 1}, // 178
	{`++++++++++++[>+++++++++++++++<-]>-`, 2, 1}, // 179
	{`++++++++++++[>+++++++++++++++<-]>`, 2, 1}, // 180
	{`++++++++++++[>+++++++++++++++<-]>+`, 2, 1}, // 181
	{`+++++++++++++[>++++++++++++++<-]>`, 2, 1}, // 182
	{`+++++++++++++[>++++++++++++++<-]>+`, 2, 1}, // 183
	{`+++++++++++++[>++++++++++++++<-]>++`, 2, 1}, // 184
	{`+++++++++++[>+++++++++++++++++<-]>--`, 2, 1}, // 185
	{`+++++++++++[>+++++++++++++++++<-]>-`, 2, 1}, // 186
	{`+++++++++++[>+++++++++++++++++<-]>`, 2, 1}, // 187
	{`+++++++++++[>+++++++++++++++++<-]>+`, 2, 1}, // 188
	{`+++++++++[>+++++++++++++++++++++<-]>`, 2, 1}, // 189
	{`++++++++++[>+++++++++++++++++++<-]>`, 2, 1}, // 190
	{`++++++++++++[>++++++++++++++++<-]>-`, 2, 1}, // 191
	{`++++++++++++[>++++++++++++++++<-]>`, 2, 1}, // 192
	{`++++++++++++[>++++++++++++++++<-]>+`, 2, 1}, // 193
	{`+++++++++++++[>+++++++++++++++<-]>-`, 2, 1}, // 194
	{`+++++++++++++[>+++++++++++++++<-]>`, 2, 1}, // 195
	{`++++++++++++++[>++++++++++++++<-]>`, 2, 1}, // 196
	{`++++++++++++++[>++++++++++++++<-]>+`, 2, 1}, // 197
	{`+++++++++++[>++++++++++++++++++<-]>`, 2, 1}, // 198
	{`+++++++++++[>++++++++++++++++++<-]>+`, 2, 1}, // 199
	{`++++++++++[>++++++++++++++++++++<-]>`, 2, 1}, // 200
	{`++++++++++[>++++++++++++++++++++<-]>+`, 2, 1}, // 201
	{`++++++++++++[>+++++++++++++++++<-]>--`, 2, 1}, // 202
	{`++++++++++++[>+++++++++++++++++<-]>-`, 2, 1}, // 203
	{`++++++++++++[>+++++++++++++++++<-]>`, 2, 1}, // 204
	{`++++++++++++[>+++++++++++++++++<-]>+`, 2, 1}, // 205
	{`++++++++++++[>+++++++++++++++++<-]>++`, 2, 1}, // 206
	{`+++++++++++++[>++++++++++++++++<-]>-`, 2, 1}, // 207
	{`+++++++++++++[>++++++++++++++++<-]>`, 2, 1}, // 208
	{`+++++++++++[>+++++++++++++++++++<-]>`, 2, 1}, // 209
	{`++++++++++++++[>+++++++++++++++<-]>`, 2, 1}, // 210
	{`++++++++++++++[>+++++++++++++++<-]>+`, 2, 1}, // 211
	{`++++++++++++++[>+++++++++++++++<-]>++`, 2, 1}, // 212
	{`++++++++++++++[>+++++++++++++++<-]>+++`, 2, 1}, // 213
	{`++++++++++++[>++++++++++++++++++<-]>--`, 2, 1}, // 214
	{`++++++++++++[>++++++++++++++++++<-]>-`, 2, 1}, // 215
	{`++++++++++++[>++++++++++++++++++<-]>`, 2, 1}, // 216
	{`++++++++++++[>++++++++++++++++++<-]>+`, 2, 1}, // 217
	{`--------------------------------------`, 1, 0}, // 218
	{`-------------------------------------`, 1, 0}, // 219
	{`------------------------------------`, 1, 0}, // 220
	{`-----------------------------------`, 1, 0}, // 221
	{`----------------------------------`, 1, 0}, // 222
	{`---------------------------------`, 1, 0}, // 223
	{`--------------------------------`, 1, 0}, // 224
	{`-------------------------------`, 1, 0}, // 225
	{`------------------------------`, 1, 0}, // 226
	{`-----------------------------`, 1, 0}, // 227
	{`----------------------------`, 1, 0}, // 228
	{`---------------------------`, 1, 0}, // 229
	{`--------------------------`, 1, 0}, // 230
	{`-------------------------`, 1, 0}, // 231
	{`------------------------`, 1, 0}, // 232
	{`-----------------------`, 1, 0}, // 233
	{`----------------------`, 1, 0}, // 234
	{`---------------------`, 1, 0}, // 235
	{`--------------------`, 1, 0}, // 236
	{`-------------------`, 1, 0}, // 237
	{`------------------`, 1, 0}, // 238
	{`-----------------`, 1, 0}, // 239
	{`----------------`, 1, 0}, // 240
	{`---------------`, 1, 0}, // 241
	{`--------------`, 1, 0}, // 242
	{`-------------`, 1, 0}, // 243
	{`------------`, 1, 0}, // 244
	{`-----------`, 1, 0}, // 245
	{`----------`, 1, 0}, // 246
	{`---------`, 1, 0}, // 247
	{`--------`, 1, 0}, // 248
	{`-------`, 1, 0}, // 249
	{`------`, 1, 0}, // 250
	{`-----`, 1, 0}, // 251
	{`----`, 1, 0}, // 252
	{`---`, 1, 0}, // 253
	{`--`, 1, 0}, // 254
	{`-`, 1, 0}, // 255
}
