// This file is part of tk2000sim.
//
// tk2000sim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// tk2000sim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with tk2000sim.  If not, see <https://www.gnu.org/licenses/>.

package disassembly_test

// the decoding of every opcode with the operand bytes 0x01, 0x02 and 0x03 and
// the opcode fetched from address 0x001000
var allOpcodes = [256]string{
	0x00: "00:1000: brk",
	0x01: "00:1000: ora ($01),x",
	0x02: "00:1000: ??? PC=1000 IN0=2 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x03: "00:1000: ora $1,s",
	0x04: "00:1000: ??? PC=1000 IN0=4 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x05: "00:1000: ora $01",
	0x06: "00:1000: asl $01",
	0x07: "00:1000: ora [$01]",
	0x08: "00:1000: php",
	0x09: "00:1000: ora #$01",
	0x0A: "00:1000: asl a",
	0x0B: "00:1000: phd",
	0x0C: "00:1000: tsb $0201",
	0x0D: "00:1000: ora $0201",
	0x0E: "00:1000: asl $0201",
	0x0F: "00:1000: ora $030201",
	0x10: "00:1000: bpl 001003 ($1)",
	0x11: "00:1000: ora ($01),y",
	0x12: "00:1000: ??? PC=1000 IN0=12 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x13: "00:1000: ??? PC=1000 IN0=13 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x14: "00:1000: ??? PC=1000 IN0=14 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x15: "00:1000: ora $01,x",
	0x16: "00:1000: asl $01,x",
	0x17: "00:1000: ora [$01],y",
	0x18: "00:1000: clc",
	0x19: "00:1000: ora $0201,y",
	0x1A: "00:1000: ina",
	0x1B: "00:1000: tcs",
	0x1C: "00:1000: trb $0201",
	0x1D: "00:1000: ora $0201,x",
	0x1E: "00:1000: asl $0201,x",
	0x1F: "00:1000: ora $030201,x",
	0x20: "00:1000: jsr $0201",
	0x21: "00:1000: ??? PC=1000 IN0=21 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x22: "00:1000: jsl $030201",
	0x23: "00:1000: and $1,s",
	0x24: "00:1000: bit $01",
	0x25: "00:1000: and $01",
	0x26: "00:1000: rol $01",
	0x27: "00:1000: and [$01]",
	0x28: "00:1000: plp",
	0x29: "00:1000: and #$01",
	0x2A: "00:1000: rol a",
	0x2B: "00:1000: pld",
	0x2C: "00:1000: bit $0201",
	0x2D: "00:1000: and $0201",
	0x2E: "00:1000: rol $0201",
	0x2F: "00:1000: ??? PC=1000 IN0=2f IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x30: "00:1000: bmi 001003 ($1)",
	0x31: "00:1000: ??? PC=1000 IN0=31 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x32: "00:1000: ??? PC=1000 IN0=32 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x33: "00:1000: ??? PC=1000 IN0=33 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x34: "00:1000: ??? PC=1000 IN0=34 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x35: "00:1000: and $01,x",
	0x36: "00:1000: ??? PC=1000 IN0=36 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x37: "00:1000: and [$01],y",
	0x38: "00:1000: sec",
	0x39: "00:1000: and $0201,y",
	0x3A: "00:1000: dea",
	0x3B: "00:1000: tsc",
	0x3C: "00:1000: bit $0201,x",
	0x3D: "00:1000: and $0201,x",
	0x3E: "00:1000: rol $0201,x",
	0x3F: "00:1000: ??? PC=1000 IN0=3f IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x40: "00:1000: rti",
	0x41: "00:1000: eor ($01),x",
	0x42: "00:1000: ??? PC=1000 IN0=42 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x43: "00:1000: eor $1,s",
	0x44: "00:1000: mvp $02, $01",
	0x45: "00:1000: eor $01",
	0x46: "00:1000: lsr $01",
	0x47: "00:1000: eor [$01]",
	0x48: "00:1000: pha",
	0x49: "00:1000: eor #$01",
	0x4A: "00:1000: lsr a",
	0x4B: "00:1000: phk",
	0x4C: "00:1000: jmp $0201",
	0x4D: "00:1000: eor $0201",
	0x4E: "00:1000: lsr $0201",
	0x4F: "00:1000: ??? PC=1000 IN0=4f IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x50: "00:1000: bvc 001003 ($1)",
	0x51: "00:1000: eor ($01),y",
	0x52: "00:1000: ??? PC=1000 IN0=52 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x53: "00:1000: ??? PC=1000 IN0=53 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x54: "00:1000: mvn $02, $01",
	0x55: "00:1000: eor $01,x",
	0x56: "00:1000: ??? PC=1000 IN0=56 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x57: "00:1000: eor [$01],y",
	0x58: "00:1000: cli",
	0x59: "00:1000: eor $0201,y",
	0x5A: "00:1000: phy",
	0x5B: "00:1000: tcd",
	0x5C: "00:1000: jmp $030201",
	0x5D: "00:1000: eor $0201,x",
	0x5E: "00:1000: lsr $0201,x",
	0x5F: "00:1000: ??? PC=1000 IN0=5f IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x60: "00:1000: rts",
	0x61: "00:1000: ??? PC=1000 IN0=61 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x62: "00:1000: per 001004 ($1)",
	0x63: "00:1000: adc $1,s",
	0x64: "00:1000: stz $01",
	0x65: "00:1000: adc $01",
	0x66: "00:1000: ror $01",
	0x67: "00:1000: adc [$01]",
	0x68: "00:1000: pla",
	0x69: "00:1000: adc #$01",
	0x6A: "00:1000: ror a",
	0x6B: "00:1000: rtl",
	0x6C: "00:1000: jmp ($0201)",
	0x6D: "00:1000: adc $0201",
	0x6E: "00:1000: ror $0201",
	0x6F: "00:1000: ??? PC=1000 IN0=6f IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x70: "00:1000: bvs 001003 ($1)",
	0x71: "00:1000: ??? PC=1000 IN0=71 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x72: "00:1000: ??? PC=1000 IN0=72 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x73: "00:1000: ??? PC=1000 IN0=73 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x74: "00:1000: ??? PC=1000 IN0=74 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x75: "00:1000: adc $01,x",
	0x76: "00:1000: ??? PC=1000 IN0=76 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x77: "00:1000: adc [$01],y",
	0x78: "00:1000: sei",
	0x79: "00:1000: adc $0201,y",
	0x7A: "00:1000: ply",
	0x7B: "00:1000: tdc",
	0x7C: "00:1000: jmp $0201,x",
	0x7D: "00:1000: adc $0201,x",
	0x7E: "00:1000: ror $0201,x",
	0x7F: "00:1000: ??? PC=1000 IN0=7f IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x80: "00:1000: bra 001003 ($1)",
	0x81: "00:1000: sta ($01),x",
	0x82: "00:1000: ??? PC=1000 IN0=82 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x83: "00:1000: sta $1,s",
	0x84: "00:1000: sty $01",
	0x85: "00:1000: sta $01",
	0x86: "00:1000: stx $01",
	0x87: "00:1000: sta [$01]",
	0x88: "00:1000: dey",
	0x89: "00:1000: bit #$01",
	0x8A: "00:1000: txa",
	0x8B: "00:1000: phb",
	0x8C: "00:1000: sty $0201",
	0x8D: "00:1000: sta $0201",
	0x8E: "00:1000: stx $0201",
	0x8F: "00:1000: sta $030201",
	0x90: "00:1000: bcc 001003 ($1)",
	0x91: "00:1000: sta ($01),y",
	0x92: "00:1000: ??? PC=1000 IN0=92 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x93: "00:1000: ??? PC=1000 IN0=93 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0x94: "00:1000: sty $01,x",
	0x95: "00:1000: sta $01,x",
	0x96: "00:1000: stx $01,y",
	0x97: "00:1000: sta [$01],y",
	0x98: "00:1000: tya",
	0x99: "00:1000: sta $0201,y",
	0x9A: "00:1000: txs",
	0x9B: "00:1000: txy",
	0x9C: "00:1000: stz $0201",
	0x9D: "00:1000: sta $0201,x",
	0x9E: "00:1000: stz $0201,x",
	0x9F: "00:1000: sta $030201,x",
	0xA0: "00:1000: ldy #$01",
	0xA1: "00:1000: lda ($01),x",
	0xA2: "00:1000: ldx #$01",
	0xA3: "00:1000: lda $1,s",
	0xA4: "00:1000: ldy $01",
	0xA5: "00:1000: lda $01",
	0xA6: "00:1000: ldx $01",
	0xA7: "00:1000: lda [$01]",
	0xA8: "00:1000: tay",
	0xA9: "00:1000: lda #$01",
	0xAA: "00:1000: tax",
	0xAB: "00:1000: plb",
	0xAC: "00:1000: ldy $0201",
	0xAD: "00:1000: lda $0201",
	0xAE: "00:1000: ldx $0201",
	0xAF: "00:1000: lda $030201",
	0xB0: "00:1000: bcs 001003 ($1)",
	0xB1: "00:1000: lda ($01),y",
	0xB2: "00:1000: lda ($0201)",
	0xB3: "00:1000: ??? PC=1000 IN0=b3 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0xB4: "00:1000: ldy $01,x",
	0xB5: "00:1000: lda $01,x",
	0xB6: "00:1000: ldx $01,y",
	0xB7: "00:1000: lda [$01],y",
	0xB8: "00:1000: clv",
	0xB9: "00:1000: lda $0201,y",
	0xBA: "00:1000: tsx",
	0xBB: "00:1000: tyx",
	0xBC: "00:1000: ldy $0201,x",
	0xBD: "00:1000: lda $0201,x",
	0xBE: "00:1000: ldx $0201,y",
	0xBF: "00:1000: lda $030201,x",
	0xC0: "00:1000: cpy #$01",
	0xC1: "00:1000: ??? PC=1000 IN0=c1 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0xC2: "00:1000: rep #$01",
	0xC3: "00:1000: cmp $1,s",
	0xC4: "00:1000: cpy $01",
	0xC5: "00:1000: cmp $01",
	0xC6: "00:1000: dec $01",
	0xC7: "00:1000: cmp [$01]",
	0xC8: "00:1000: iny",
	0xC9: "00:1000: cmp #$01",
	0xCA: "00:1000: dex",
	0xCB: "00:1000: ??? PC=1000 IN0=cb IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0xCC: "00:1000: cpy $0201",
	0xCD: "00:1000: cmp $0201",
	0xCE: "00:1000: dec $0201",
	0xCF: "00:1000: cmp $030201",
	0xD0: "00:1000: bne 001003 ($1)",
	0xD1: "00:1000: cmp ($01),y",
	0xD2: "00:1000: ??? PC=1000 IN0=d2 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0xD3: "00:1000: ??? PC=1000 IN0=d3 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0xD4: "00:1000: pei $01",
	0xD5: "00:1000: cmp $01,x",
	0xD6: "00:1000: dec $01,x",
	0xD7: "00:1000: cmp [$01],y",
	0xD8: "00:1000: cld",
	0xD9: "00:1000: cmp $0201,y",
	0xDA: "00:1000: phx",
	0xDB: "00:1000: ??? PC=1000 IN0=db IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0xDC: "00:1000: ??? PC=1000 IN0=dc IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0xDD: "00:1000: cmp $0201,x",
	0xDE: "00:1000: dec $0201,x",
	0xDF: "00:1000: cmp $030201,x",
	0xE0: "00:1000: cpx #$01",
	0xE1: "00:1000: sbc ($01),x",
	0xE2: "00:1000: sep #$01",
	0xE3: "00:1000: sbc $1,s",
	0xE4: "00:1000: cpx $01",
	0xE5: "00:1000: sbc $01",
	0xE6: "00:1000: inc $01",
	0xE7: "00:1000: sbc [$01]",
	0xE8: "00:1000: inx",
	0xE9: "00:1000: sbc #$01",
	0xEA: "00:1000: nop",
	0xEB: "00:1000: xba",
	0xEC: "00:1000: cpx $0201",
	0xED: "00:1000: sbc $0201",
	0xEE: "00:1000: inc $0201",
	0xEF: "00:1000: ??? PC=1000 IN0=ef IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0xF0: "00:1000: beq 001003 ($1)",
	0xF1: "00:1000: sbc ($01),y",
	0xF2: "00:1000: ??? PC=1000 IN0=f2 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0xF3: "00:1000: ??? PC=1000 IN0=f3 IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
	0xF4: "00:1000: pea $0201",
	0xF5: "00:1000: sbc $01,x",
	0xF6: "00:1000: inc $01,x",
	0xF7: "00:1000: sbc [$01],y",
	0xF8: "00:1000: sed",
	0xF9: "00:1000: sbc $0201,y",
	0xFA: "00:1000: plx",
	0xFB: "00:1000: xce",
	0xFC: "00:1000: jsr $0201,x",
	0xFD: "00:1000: sbc $0201,x",
	0xFE: "00:1000: inc $0201,x",
	0xFF: "00:1000: ??? PC=1000 IN0=ff IN1=1 IN2=2 IN3=3 IN4=0 MA0=1000 MA1=1001 MA2=1002 MA3=1003 MA4=0",
}
